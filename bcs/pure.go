// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/holiman/uint256"
)

// helpers producing the bytes of a pure transaction argument

func PureU8(v uint8) []byte {
	w := NewWriter()
	w.WriteU8(v)
	return w.Bytes()
}

func PureU16(v uint16) []byte {
	w := NewWriter()
	w.WriteU16(v)
	return w.Bytes()
}

func PureU32(v uint32) []byte {
	w := NewWriter()
	w.WriteU32(v)
	return w.Bytes()
}

func PureU64(v uint64) []byte {
	w := NewWriter()
	w.WriteU64(v)
	return w.Bytes()
}

// PureU256 - u256 from a fixed width integer, limbs are least significant first
func PureU256(v *uint256.Int) []byte {
	w := NewWriter()
	for _, limb := range v {
		w.WriteU64(limb)
	}
	return w.Bytes()
}

func PureBool(v bool) []byte {
	w := NewWriter()
	w.WriteBool(v)
	return w.Bytes()
}

func PureAddress(a Address) []byte {
	return a.Bytes()
}

// PureString - a Move String or vector<u8>
func PureString(s string) []byte {
	w := NewWriter()
	w.WriteString(s)
	return w.Bytes()
}

// PureBytes - vector<u8>
func PureBytes(b []byte) []byte {
	w := NewWriter()
	w.WriteByteVector(b)
	return w.Bytes()
}

// PureU64Vector - vector<u64>, as used for split amounts
func PureU64Vector(values ...uint64) []byte {
	w := NewWriter()
	w.WriteVectorLength(len(values))
	for _, v := range values {
		w.WriteU64(v)
	}
	return w.Bytes()
}
