// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intent

import (
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/suicore/bcs"
)

// Scope - what kind of message is being signed
type Scope byte

// enumeration of scopes
const (
	TransactionData    Scope = iota
	TransactionEffects Scope = iota
	CheckpointSummary  Scope = iota
	PersonalMessage    Scope = iota
	InvalidScope       Scope = iota // keep last
)

// fixed fields of the intent prefix
const (
	V0  = 0x00
	Sui = 0x00
)

// PrefixLength - bytes of intent in front of a message
const PrefixLength = 3

// DigestLength - size of an intent digest
const DigestLength = blake2b.Size256

// String - scope name
func (scope Scope) String() string {
	switch scope {
	case TransactionData:
		return "TransactionData"
	case TransactionEffects:
		return "TransactionEffects"
	case CheckpointSummary:
		return "CheckpointSummary"
	case PersonalMessage:
		return "PersonalMessage"
	default:
		return "Invalid"
	}
}

// Prefix - the three intent bytes for a scope
func Prefix(scope Scope) [PrefixLength]byte {
	return [PrefixLength]byte{byte(scope), V0, Sui}
}

// Frame - intent prefix followed by the message
func Frame(scope Scope, message []byte) []byte {
	prefix := Prefix(scope)
	frame := make([]byte, 0, PrefixLength+len(message))
	frame = append(frame, prefix[:]...)
	return append(frame, message...)
}

// Digest - blake2b-256 of the framed message
func Digest(scope Scope, message []byte) [DigestLength]byte {
	return blake2b.Sum256(Frame(scope, message))
}

// TransactionDigest - digest to sign for packed transaction bytes
func TransactionDigest(txBytes []byte) [DigestLength]byte {
	return Digest(TransactionData, txBytes)
}

// EncodePersonalMessage - a personal message is signed as a bcs vector<u8>
func EncodePersonalMessage(message []byte) []byte {
	w := bcs.NewWriter()
	w.WriteByteVector(message)
	return w.Bytes()
}

// PersonalMessageDigest - digest to sign for arbitrary bytes
func PersonalMessageDigest(message []byte) [DigestLength]byte {
	return Digest(PersonalMessage, EncodePersonalMessage(message))
}
