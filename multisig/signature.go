// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"encoding/base64"
	"encoding/binary"
	"math/bits"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/keypair"
)

// bitmap is always sent as two little endian bytes
const bitmapLength = 2

// Signature - member bitmap and signatures in bitmap order
type Signature struct {
	Bitmap     uint16
	Signatures [][]byte
}

// Count - number of set bits
func (s *Signature) Count() int {
	return bits.OnesCount16(s.Bitmap)
}

// Bytes - flag, bitmap length, bitmap then length prefixed signatures
func (s *Signature) Bytes() []byte {
	buffer := []byte{byte(keypair.MultiSig), bitmapLength, 0, 0}
	binary.LittleEndian.PutUint16(buffer[2:], s.Bitmap)
	for _, sig := range s.Signatures {
		buffer = append(buffer, byte(len(sig)))
		buffer = append(buffer, sig...)
	}
	return buffer
}

// String - base64 of Bytes
func (s *Signature) String() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// MarshalText - base64 text
func (s *Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - parse base64 text
func (s *Signature) UnmarshalText(text []byte) error {
	sig, err := ParseSignatureBase64(string(text))
	if nil != err {
		return err
	}
	*s = *sig
	return nil
}

// ParseSignature - decode Bytes; the signature count is not checked
// against the bitmap here, Verify does that
func ParseSignature(buffer []byte) (*Signature, error) {
	if len(buffer) < 2+bitmapLength {
		return nil, fault.ErrTruncatedInput
	}
	if keypair.MultiSig != keypair.Scheme(buffer[0]) {
		return nil, fault.ErrUnsupportedScheme
	}
	if bitmapLength != buffer[1] {
		return nil, fault.ErrInvalidSignatureLength
	}

	s := &Signature{
		Bitmap: binary.LittleEndian.Uint16(buffer[2:4]),
	}
	n := 4
	for n < len(buffer) {
		length := int(buffer[n])
		n += 1
		if keypair.SignatureSize != length {
			return nil, fault.ErrInvalidSignatureLength
		}
		if n+length > len(buffer) {
			return nil, fault.ErrTruncatedInput
		}
		if len(s.Signatures) >= MaximumMembers {
			return nil, fault.ErrTooManyItems
		}
		s.Signatures = append(s.Signatures, append([]byte{}, buffer[n:n+length]...))
		n += length
	}
	return s, nil
}

// ParseSignatureBase64 - decode the String form
func ParseSignatureBase64(text string) (*Signature, error) {
	b, err := base64.StdEncoding.DecodeString(text)
	if nil != err {
		return nil, fault.ErrInvalidSignatureLength
	}
	return ParseSignature(b)
}
