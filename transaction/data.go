// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
)

// envelope discriminants; only the first of each exists so far
const (
	transactionDataV1Tag       = 0
	programmableTransactionTag = 0
)

// ExpirationKind - binary discriminant of an expiration
type ExpirationKind uint64

// enumerate the possible expirations
const (
	NoExpiration    ExpirationKind = iota
	EpochExpiration ExpirationKind = iota

	// this item must be last
	InvalidExpiration ExpirationKind = iota
)

// Expiration - when the transaction stops being valid
type Expiration struct {
	Kind  ExpirationKind
	Epoch uint64
}

// GasData - who pays and how much
type GasData struct {
	Payment []ObjectRef
	Owner   bcs.Address
	Price   uint64
	Budget  uint64
}

// Data - a complete transaction ready to be packed and signed
type Data struct {
	Sender     bcs.Address
	Gas        GasData
	Expiration Expiration
	Inputs     []CallArg
	Commands   []Command
}

// Packed - canonical bytes of a transaction
type Packed []byte

// Pack - canonical encoding of the transaction
//
// TransactionData::V1 {
//   kind: ProgrammableTransaction { inputs, commands },
//   sender, gas_data, expiration
// }
func (data *Data) Pack() (Packed, error) {
	w := bcs.NewWriter()

	w.WriteVarint(transactionDataV1Tag)
	w.WriteVarint(programmableTransactionTag)

	w.WriteVectorLength(len(data.Inputs))
	for _, input := range data.Inputs {
		if err := packCallArg(w, input); nil != err {
			return nil, err
		}
	}

	w.WriteVectorLength(len(data.Commands))
	for _, command := range data.Commands {
		command.pack(w)
	}

	w.WriteAddress(data.Sender)

	w.WriteVectorLength(len(data.Gas.Payment))
	for _, ref := range data.Gas.Payment {
		packObjectRef(w, ref)
	}
	w.WriteAddress(data.Gas.Owner)
	w.WriteU64(data.Gas.Price)
	w.WriteU64(data.Gas.Budget)

	switch data.Expiration.Kind {
	case NoExpiration:
		w.WriteVarint(uint64(NoExpiration))
	case EpochExpiration:
		w.WriteVarint(uint64(EpochExpiration))
		w.WriteU64(data.Expiration.Epoch)
	default:
		return nil, fault.ErrInvalidDiscriminant
	}

	return Packed(w.Bytes()), nil
}
