// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/typetag"
)

// Unpack - turn canonical bytes back into a transaction
//
// the whole buffer must be consumed; any malformed field is reported
// and no partial transaction is returned
func (record Packed) Unpack() (*Data, error) {
	r := bcs.NewReader(record)

	if _, err := r.ReadDiscriminant(transactionDataV1Tag + 1); nil != err {
		return nil, err
	}
	if _, err := r.ReadDiscriminant(programmableTransactionTag + 1); nil != err {
		return nil, err
	}

	data := &Data{}

	inputCount, err := readCount(r)
	if nil != err {
		return nil, err
	}
	for i := 0; i < inputCount; i += 1 {
		input, err := unpackCallArg(r)
		if nil != err {
			return nil, err
		}
		data.Inputs = append(data.Inputs, input)
	}

	commandCount, err := readCount(r)
	if nil != err {
		return nil, err
	}
	for i := 0; i < commandCount; i += 1 {
		command, err := unpackCommand(r)
		if nil != err {
			return nil, err
		}
		data.Commands = append(data.Commands, command)
	}

	data.Sender, err = r.ReadAddress()
	if nil != err {
		return nil, err
	}

	paymentCount, err := readCount(r)
	if nil != err {
		return nil, err
	}
	for i := 0; i < paymentCount; i += 1 {
		ref, err := unpackObjectRef(r)
		if nil != err {
			return nil, err
		}
		data.Gas.Payment = append(data.Gas.Payment, ref)
	}
	if data.Gas.Owner, err = r.ReadAddress(); nil != err {
		return nil, err
	}
	if data.Gas.Price, err = r.ReadU64(); nil != err {
		return nil, err
	}
	if data.Gas.Budget, err = r.ReadU64(); nil != err {
		return nil, err
	}

	kind, err := r.ReadDiscriminant(uint64(InvalidExpiration))
	if nil != err {
		return nil, err
	}
	data.Expiration.Kind = ExpirationKind(kind)
	if EpochExpiration == data.Expiration.Kind {
		if data.Expiration.Epoch, err = r.ReadU64(); nil != err {
			return nil, err
		}
	}

	if err := r.Done(); nil != err {
		return nil, err
	}
	return data, nil
}

// a count can never exceed the bytes left, every item takes at least one
func readCount(r *bcs.Reader) (int, error) {
	n, err := r.ReadVectorLength()
	if nil != err {
		return 0, err
	}
	if n > r.Remaining() {
		return 0, fault.ErrTruncatedInput
	}
	return n, nil
}

func unpackObjectRef(r *bcs.Reader) (ObjectRef, error) {
	ref := ObjectRef{}
	var err error

	if ref.ObjectID, err = r.ReadAddress(); nil != err {
		return ref, err
	}
	if ref.Version, err = r.ReadU64(); nil != err {
		return ref, err
	}
	digest, err := r.ReadByteVector()
	if nil != err {
		return ref, err
	}
	if ObjectDigestLength != len(digest) {
		return ref, fault.ErrInvalidDigestLength
	}
	copy(ref.Digest[:], digest)
	return ref, nil
}

func unpackCallArg(r *bcs.Reader) (CallArg, error) {
	tag, err := r.ReadDiscriminant(uint64(InvalidCallArgTag))
	if nil != err {
		return nil, err
	}

	if PureTag == CallArgTag(tag) {
		b, err := r.ReadByteVector()
		if nil != err {
			return nil, err
		}
		return Pure{Bytes: b}, nil
	}

	objectTag, err := r.ReadDiscriminant(uint64(InvalidObjectArgTag))
	if nil != err {
		return nil, err
	}

	switch ObjectArgTag(objectTag) {
	case ImmOrOwnedObjectTag:
		ref, err := unpackObjectRef(r)
		if nil != err {
			return nil, err
		}
		return ImmOrOwnedObject{Ref: ref}, nil

	case SharedObjectTag:
		id, err := r.ReadAddress()
		if nil != err {
			return nil, err
		}
		version, err := r.ReadU64()
		if nil != err {
			return nil, err
		}
		mutable, err := r.ReadBool()
		if nil != err {
			return nil, err
		}
		return SharedObject{
			ObjectID:             id,
			InitialSharedVersion: version,
			Mutable:              mutable,
		}, nil

	default: // ReceivingObjectTag
		ref, err := unpackObjectRef(r)
		if nil != err {
			return nil, err
		}
		return ReceivingObject{Ref: ref}, nil
	}
}

func unpackArgument(r *bcs.Reader) (Argument, error) {
	tag, err := r.ReadDiscriminant(uint64(InvalidArgumentTag))
	if nil != err {
		return nil, err
	}

	switch ArgumentTag(tag) {
	case GasCoinTag:
		return GasCoin{}, nil

	case InputTag:
		index, err := r.ReadU16()
		if nil != err {
			return nil, err
		}
		return Input{index: index}, nil

	case ResultTag:
		index, err := r.ReadU16()
		if nil != err {
			return nil, err
		}
		return Result{index: index}, nil

	default: // NestedResultTag
		index, err := r.ReadU16()
		if nil != err {
			return nil, err
		}
		result, err := r.ReadU16()
		if nil != err {
			return nil, err
		}
		return NestedResult{index: index, result: result}, nil
	}
}

func unpackArguments(r *bcs.Reader) ([]Argument, error) {
	n, err := readCount(r)
	if nil != err {
		return nil, err
	}
	arguments := make([]Argument, 0, n)
	for i := 0; i < n; i += 1 {
		a, err := unpackArgument(r)
		if nil != err {
			return nil, err
		}
		arguments = append(arguments, a)
	}
	return arguments, nil
}

func unpackModules(r *bcs.Reader) ([][]byte, []bcs.Address, error) {
	n, err := readCount(r)
	if nil != err {
		return nil, nil, err
	}
	modules := make([][]byte, 0, n)
	for i := 0; i < n; i += 1 {
		m, err := r.ReadByteVector()
		if nil != err {
			return nil, nil, err
		}
		modules = append(modules, m)
	}

	n, err = readCount(r)
	if nil != err {
		return nil, nil, err
	}
	dependencies := make([]bcs.Address, 0, n)
	for i := 0; i < n; i += 1 {
		d, err := r.ReadAddress()
		if nil != err {
			return nil, nil, err
		}
		dependencies = append(dependencies, d)
	}
	return modules, dependencies, nil
}

func unpackCommand(r *bcs.Reader) (Command, error) {
	tag, err := r.ReadDiscriminant(uint64(InvalidCommandTag))
	if nil != err {
		return nil, err
	}

unpack_switch:
	switch CommandTag(tag) {

	case MoveCallTag:
		c := &MoveCall{}
		if c.Package, err = r.ReadAddress(); nil != err {
			break unpack_switch
		}
		if c.Module, err = r.ReadString(); nil != err {
			break unpack_switch
		}
		if c.Function, err = r.ReadString(); nil != err {
			break unpack_switch
		}
		n, err := readCount(r)
		if nil != err {
			return nil, err
		}
		for i := 0; i < n; i += 1 {
			t, err := typetag.Decode(r)
			if nil != err {
				return nil, err
			}
			c.TypeArguments = append(c.TypeArguments, t)
		}
		if c.Arguments, err = unpackArguments(r); nil != err {
			return nil, err
		}
		return c, nil

	case TransferObjectsTag:
		c := &TransferObjects{}
		if c.Objects, err = unpackArguments(r); nil != err {
			break unpack_switch
		}
		if c.Address, err = unpackArgument(r); nil != err {
			break unpack_switch
		}
		return c, nil

	case SplitCoinsTag:
		c := &SplitCoins{}
		if c.Coin, err = unpackArgument(r); nil != err {
			break unpack_switch
		}
		if c.Amounts, err = unpackArguments(r); nil != err {
			break unpack_switch
		}
		return c, nil

	case MergeCoinsTag:
		c := &MergeCoins{}
		if c.Destination, err = unpackArgument(r); nil != err {
			break unpack_switch
		}
		if c.Sources, err = unpackArguments(r); nil != err {
			break unpack_switch
		}
		return c, nil

	case PublishTag:
		c := &Publish{}
		if c.Modules, c.Dependencies, err = unpackModules(r); nil != err {
			break unpack_switch
		}
		return c, nil

	case MakeMoveVecTag:
		c := &MakeMoveVec{}
		present, err := r.ReadOptionTag()
		if nil != err {
			return nil, err
		}
		if present {
			if c.Type, err = typetag.Decode(r); nil != err {
				return nil, err
			}
		}
		if c.Elements, err = unpackArguments(r); nil != err {
			return nil, err
		}
		return c, nil

	case UpgradeTag:
		c := &Upgrade{}
		if c.Modules, c.Dependencies, err = unpackModules(r); nil != err {
			break unpack_switch
		}
		if c.Package, err = r.ReadAddress(); nil != err {
			break unpack_switch
		}
		if c.Ticket, err = unpackArgument(r); nil != err {
			break unpack_switch
		}
		return c, nil
	}

	if nil == err {
		err = fault.ErrInvalidDiscriminant
	}
	return nil, err
}
