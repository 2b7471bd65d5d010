// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/suicore/fault"
)

// AddressLength - number of bytes in an address or object id
const AddressLength = 32

// Address - a 32 byte account address or object id
type Address [AddressLength]byte

// AddressFromString - parse a hex address, 0x prefix optional
//
// short forms such as "0x2" are left-padded with zeroes
func AddressFromString(s string) (Address, error) {
	var a Address
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if 0 == len(s) || len(s) > 2*AddressLength {
		return a, fault.ErrInvalidAddress
	}
	if 0 != len(s)%2 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return a, fault.ErrInvalidAddress
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

// AddressFromBytes - exactly 32 bytes
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if AddressLength != len(b) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// MustAddress - for constants only, panics on bad input
func MustAddress(s string) Address {
	a, err := AddressFromString(s)
	fault.PanicIfError("address constant: "+s, err)
	return a
}

// Bytes - copy of the raw address
func (a Address) Bytes() []byte {
	return append([]byte{}, a[:]...)
}

// String - normalized 0x + 64 lowercase hex digits
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString - leading zeroes removed, as used in type tags
func (a Address) ShortString() string {
	s := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if "" == s {
		s = "0"
	}
	return "0x" + s
}

// IsZero - true for the all-zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText - convert address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an address
func (a *Address) UnmarshalText(s []byte) error {
	result, err := AddressFromString(string(s))
	if nil != err {
		return err
	}
	*a = result
	return nil
}
