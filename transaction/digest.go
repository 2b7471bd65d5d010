// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/suicore/fault"
)

// prefix hashed in front of the packed bytes
const digestPrefix = "TransactionData::"

// DigestLength - bytes in a transaction digest
const DigestLength = blake2b.Size256

// Digest - the transaction id
type Digest [DigestLength]byte

// Digest - blake2b-256 over the type-prefixed packed bytes
func (record Packed) Digest() Digest {
	h, err := blake2b.New256(nil)
	if nil != err {
		// only fails for an oversized key
		panic(err)
	}
	h.Write([]byte(digestPrefix))
	h.Write(record)

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DigestFromString - decode a base58 transaction digest
func DigestFromString(s string) (Digest, error) {
	var d Digest
	b, err := base58.Decode(s)
	if nil != err || DigestLength != len(b) {
		return d, fault.ErrInvalidDigestLength
	}
	copy(d[:], b)
	return d, nil
}

// String - base58
func (d Digest) String() string {
	return base58.Encode(d[:])
}

// MarshalText - convert digest to base58 text
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert base58 text into a digest
func (d *Digest) UnmarshalText(s []byte) error {
	result, err := DigestFromString(string(s))
	if nil != err {
		return err
	}
	*d = result
	return nil
}
