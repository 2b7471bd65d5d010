// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"

	"github.com/bitmark-inc/suicore/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 10

// MaximumVarint - largest value a decoder will accept
//
// lengths, counts and discriminants never exceed the 32 bit range
const MaximumVarint = 0xffffffff

// ToVarint64 - convert a 64 bit unsigned integer to a ULEB128 varint
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// ...
// byte 10:   0 |   0 |   0 |   0 |   0 |   0 |   0 | B63
//
// ext is set on every byte except the last
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if 0 == value {
			return append(result, b)
		}
		result = append(result, b|0x80)
	}
}

// FromVarint64 - decode a canonical varint from the start of buffer
//
// returns the value and the number of bytes used; the bytes consumed
// must be exactly the minimal encoding of the value
func FromVarint64(buffer []byte) (uint64, int, error) {
	result := uint64(0)
	shift := uint(0)
	count := 0

	for {
		if shift >= 64 {
			return 0, 0, fault.ErrVarintOverflow
		}
		if count >= len(buffer) {
			return 0, 0, fault.ErrTruncatedInput
		}
		currentByte := buffer[count]
		count += 1

		result |= uint64(currentByte&0x7f) << shift
		if 0 == currentByte&0x80 {
			break
		}
		shift += 7
	}

	if result > MaximumVarint {
		return 0, 0, fault.ErrVarintOverflow
	}

	// byte comparison, not a range check: 0x80 0x00 decodes to zero
	// but is not the encoding of zero
	if !bytes.Equal(ToVarint64(result), buffer[:count]) {
		return 0, 0, fault.ErrNonCanonicalEncoding
	}
	return result, count, nil
}

// ClippedVarint64 - return a decoded value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int, error) {
	if minimum < 0 || maximum < 0 || minimum > maximum {
		return 0, 0, fault.ErrValueOutOfRange
	}

	value, count, err := FromVarint64(buffer)
	if nil != err {
		return 0, 0, err
	}
	if value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0, fault.ErrValueOutOfRange
	}
	return int(value), count, nil
}
