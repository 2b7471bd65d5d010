// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/base64"

	"github.com/bitmark-inc/suicore/fault"
)

// PublicKey - verification half of a key pair
//
// Verify takes the 32 byte intent digest; any scheme specific hashing
// happens inside
type PublicKey interface {
	Scheme() Scheme
	Bytes() []byte
	SuiBytes() []byte
	Verify(digest []byte, signature []byte) bool
	String() string
}

// Signer - signing half of a key pair
//
// Sign takes the 32 byte intent digest and returns a 64 byte signature
type Signer interface {
	Scheme() Scheme
	PublicKey() PublicKey
	Sign(digest []byte) ([]byte, error)
	Secret() []byte
}

// Generate - a new random key for the scheme
func Generate(scheme Scheme) (Signer, error) {
	switch scheme {
	case Ed25519:
		return generateEd25519()
	case Secp256k1:
		return generateSecp256k1()
	case Secp256r1:
		return generateSecp256r1()
	default:
		return nil, fault.ErrUnsupportedScheme
	}
}

// FromSecret - rebuild a key from its 32 byte secret
func FromSecret(scheme Scheme, secret []byte) (Signer, error) {
	if SecretSize != len(secret) {
		return nil, fault.ErrInvalidKeyLength
	}
	switch scheme {
	case Ed25519:
		return ed25519FromSecret(secret)
	case Secp256k1:
		return secp256k1FromSecret(secret)
	case Secp256r1:
		return secp256r1FromSecret(secret)
	default:
		return nil, fault.ErrUnsupportedScheme
	}
}

// PublicKeyFromBytes - parse a raw public key of the given scheme
func PublicKeyFromBytes(scheme Scheme, raw []byte) (PublicKey, error) {
	size, err := PublicKeySize(scheme)
	if nil != err {
		return nil, err
	}
	if size != len(raw) {
		return nil, fault.ErrInvalidKeyLength
	}

	switch scheme {
	case Ed25519:
		return ed25519PublicKeyFromBytes(raw)
	case Secp256k1:
		return secp256k1PublicKeyFromBytes(raw)
	case Secp256r1:
		return secp256r1PublicKeyFromBytes(raw)
	default:
		return nil, fault.ErrUnsupportedScheme
	}
}

// PublicKeyFromSuiBytes - parse flag || raw public key
func PublicKeyFromSuiBytes(b []byte) (PublicKey, error) {
	if 0 == len(b) {
		return nil, fault.ErrInvalidKeyLength
	}
	return PublicKeyFromBytes(Scheme(b[0]), b[1:])
}

// PublicKeyFromBase64 - parse the base64 text of flag || raw public key
func PublicKeyFromBase64(s string) (PublicKey, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidKeyLength
	}
	return PublicKeyFromSuiBytes(b)
}

// flag || raw
func suiBytes(scheme Scheme, raw []byte) []byte {
	b := make([]byte, 0, 1+len(raw))
	b = append(b, byte(scheme))
	return append(b, raw...)
}

// text form used for every key type
func publicKeyString(scheme Scheme, raw []byte) string {
	return base64.StdEncoding.EncodeToString(suiBytes(scheme, raw))
}
