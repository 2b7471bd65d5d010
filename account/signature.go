// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/base64"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/keypair"
)

// SerializedSignature - flag || signature || public key
type SerializedSignature []byte

// ToSerializedSignature - combine the parts, checking every length
func ToSerializedSignature(scheme keypair.Scheme, signature []byte, pub []byte) (SerializedSignature, error) {
	size, err := keypair.PublicKeySize(scheme)
	if nil != err {
		return nil, err
	}
	if keypair.SignatureSize != len(signature) {
		return nil, fault.ErrInvalidSignatureLength
	}
	if size != len(pub) {
		return nil, fault.ErrInvalidKeyLength
	}

	s := make(SerializedSignature, 0, 1+keypair.SignatureSize+size)
	s = append(s, byte(scheme))
	s = append(s, signature...)
	s = append(s, pub...)
	return s, nil
}

// ParseSerializedSignature - decode base64 text
func ParseSerializedSignature(text string) (SerializedSignature, error) {
	b, err := base64.StdEncoding.DecodeString(text)
	if nil != err {
		return nil, fault.ErrInvalidSignatureLength
	}
	return SerializedSignatureFromBytes(b)
}

// SerializedSignatureFromBytes - structural checks only, no crypto
func SerializedSignatureFromBytes(b []byte) (SerializedSignature, error) {
	if 0 == len(b) {
		return nil, fault.ErrInvalidSignatureLength
	}
	scheme := keypair.Scheme(b[0])
	if !scheme.IsSignable() {
		return nil, fault.ErrUnsupportedScheme
	}
	size, err := keypair.PublicKeySize(scheme)
	if nil != err {
		return nil, err
	}
	if 1+keypair.SignatureSize+size != len(b) {
		return nil, fault.ErrInvalidSignatureLength
	}
	return append(SerializedSignature{}, b...), nil
}

// Scheme - the flag byte
func (signature SerializedSignature) Scheme() keypair.Scheme {
	return keypair.Scheme(signature[0])
}

// Signature - the 64 signature bytes
func (signature SerializedSignature) Signature() []byte {
	return signature[1 : 1+keypair.SignatureSize]
}

// PublicKeyBytes - the raw public key bytes
func (signature SerializedSignature) PublicKeyBytes() []byte {
	return signature[1+keypair.SignatureSize:]
}

// PublicKey - parse the embedded key
func (signature SerializedSignature) PublicKey() (keypair.PublicKey, error) {
	return keypair.PublicKeyFromBytes(signature.Scheme(), signature.PublicKeyBytes())
}

// String - base64 for use by the fmt package (for %s)
func (signature SerializedSignature) String() string {
	return base64.StdEncoding.EncodeToString(signature)
}

// GoString - for use by the fmt package (for %#v)
func (signature SerializedSignature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to base64 text
func (signature SerializedSignature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert base64 text into a signature
func (signature *SerializedSignature) UnmarshalText(s []byte) error {
	sig, err := ParseSerializedSignature(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
