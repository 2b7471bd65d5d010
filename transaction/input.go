// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
)

// CallArgTag - binary discriminant of an input
type CallArgTag uint64

// enumerate the possible inputs
const (
	PureTag   CallArgTag = iota
	ObjectTag CallArgTag = iota

	// this item must be last
	InvalidCallArgTag CallArgTag = iota
)

// ObjectArgTag - binary discriminant of an object input
type ObjectArgTag uint64

// enumerate the possible object inputs
const (
	ImmOrOwnedObjectTag ObjectArgTag = iota
	SharedObjectTag     ObjectArgTag = iota
	ReceivingObjectTag  ObjectArgTag = iota

	// this item must be last
	InvalidObjectArgTag ObjectArgTag = iota
)

// ObjectDigestLength - bytes in an object digest
const ObjectDigestLength = 32

// ObjectDigest - content digest of one version of an object
type ObjectDigest [ObjectDigestLength]byte

// ObjectDigestFromString - decode a base58 digest
func ObjectDigestFromString(s string) (ObjectDigest, error) {
	var d ObjectDigest
	b, err := base58.Decode(s)
	if nil != err {
		return d, fault.ErrInvalidDigestLength
	}
	if ObjectDigestLength != len(b) {
		return d, fault.ErrInvalidDigestLength
	}
	copy(d[:], b)
	return d, nil
}

// String - base58
func (d ObjectDigest) String() string {
	return base58.Encode(d[:])
}

// MarshalText - convert digest to base58 text
func (d ObjectDigest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert base58 text into a digest
func (d *ObjectDigest) UnmarshalText(s []byte) error {
	result, err := ObjectDigestFromString(string(s))
	if nil != err {
		return err
	}
	*d = result
	return nil
}

// ObjectRef - a specific version of an object
type ObjectRef struct {
	ObjectID bcs.Address  `json:"objectId"`
	Version  uint64       `json:"version"`
	Digest   ObjectDigest `json:"digest"`
}

// CallArg - one entry of the input list
type CallArg interface {
	isCallArg()
}

// Pure - bcs encoded bytes of a plain value
type Pure struct {
	Bytes []byte
}

// ImmOrOwnedObject - an immutable or address-owned object
type ImmOrOwnedObject struct {
	Ref ObjectRef
}

// SharedObject - a consensus object
type SharedObject struct {
	ObjectID             bcs.Address
	InitialSharedVersion uint64
	Mutable              bool
}

// ReceivingObject - an object sent to another object
type ReceivingObject struct {
	Ref ObjectRef
}

// UnresolvedObject - only the id is known; an ObjectResolver must
// replace it before the transaction can be packed
type UnresolvedObject struct {
	ObjectID string
	Mutable  bool
}

func (Pure) isCallArg()             {}
func (ImmOrOwnedObject) isCallArg() {}
func (SharedObject) isCallArg()     {}
func (ReceivingObject) isCallArg()  {}
func (UnresolvedObject) isCallArg() {}

// the object id of an object input, used to intern slots
func objectKey(arg CallArg) (string, bool) {
	switch a := arg.(type) {
	case ImmOrOwnedObject:
		return a.Ref.ObjectID.String(), true
	case SharedObject:
		return a.ObjectID.String(), true
	case ReceivingObject:
		return a.Ref.ObjectID.String(), true
	case UnresolvedObject:
		return a.ObjectID, true
	default:
		return "", false
	}
}

func packObjectRef(w *bcs.Writer, ref ObjectRef) {
	w.WriteAddress(ref.ObjectID)
	w.WriteU64(ref.Version)
	w.WriteByteVector(ref.Digest[:])
}

func packCallArg(w *bcs.Writer, arg CallArg) error {
	switch a := arg.(type) {
	case Pure:
		w.WriteVarint(uint64(PureTag))
		w.WriteByteVector(a.Bytes)

	case ImmOrOwnedObject:
		w.WriteVarint(uint64(ObjectTag))
		w.WriteVarint(uint64(ImmOrOwnedObjectTag))
		packObjectRef(w, a.Ref)

	case SharedObject:
		w.WriteVarint(uint64(ObjectTag))
		w.WriteVarint(uint64(SharedObjectTag))
		w.WriteAddress(a.ObjectID)
		w.WriteU64(a.InitialSharedVersion)
		w.WriteBool(a.Mutable)

	case ReceivingObject:
		w.WriteVarint(uint64(ObjectTag))
		w.WriteVarint(uint64(ReceivingObjectTag))
		packObjectRef(w, a.Ref)

	case UnresolvedObject:
		return fault.ErrUnresolvedInput

	default:
		return fault.ErrInvalidDiscriminant
	}
	return nil
}
