// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/keypair"
)

// Account - a public key together with its on-chain address
type Account struct {
	keypair.PublicKey
}

// New - wrap a public key
func New(pub keypair.PublicKey) *Account {
	return &Account{PublicKey: pub}
}

// Address - blake2b-256 of flag || public key
func (account *Account) Address() bcs.Address {
	return AddressOf(account.PublicKey)
}

// MarshalText - the address text
func (account *Account) MarshalText() ([]byte, error) {
	return account.Address().MarshalText()
}

// AddressOf - address for any single key
func AddressOf(pub keypair.PublicKey) bcs.Address {
	return AddressFromSuiBytes(pub.SuiBytes())
}

// AddressFromSuiBytes - address from flag || key bytes, also used for
// the multisig public key encoding
func AddressFromSuiBytes(b []byte) bcs.Address {
	return bcs.Address(blake2b.Sum256(b))
}
