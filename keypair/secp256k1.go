// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/bitmark-inc/suicore/fault"
)

// Secp256k1PublicKey - compressed point; signatures cover sha256(digest)
type Secp256k1PublicKey struct {
	key *secp256k1.PublicKey
}

// Secp256k1Signer - private key
type Secp256k1Signer struct {
	key *secp256k1.PrivateKey
}

func generateSecp256k1() (*Secp256k1Signer, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if nil != err {
		return nil, err
	}
	return &Secp256k1Signer{key: priv}, nil
}

// the secret must be a valid scalar, no silent reduction
func secp256k1FromSecret(secret []byte) (*Secp256k1Signer, error) {
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(secret)
	if overflow || scalar.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &Secp256k1Signer{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

func secp256k1PublicKeyFromBytes(raw []byte) (*Secp256k1PublicKey, error) {
	if ECPublicKeySize != len(raw) {
		return nil, fault.ErrInvalidKeyLength
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if nil != err {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Secp256k1PublicKey{key: pub}, nil
}

// Scheme - Secp256k1
func (k *Secp256k1PublicKey) Scheme() Scheme {
	return Secp256k1
}

// Bytes - 33 byte compressed point
func (k *Secp256k1PublicKey) Bytes() []byte {
	return k.key.SerializeCompressed()
}

// SuiBytes - flag || compressed point
func (k *Secp256k1PublicKey) SuiBytes() []byte {
	return suiBytes(Secp256k1, k.key.SerializeCompressed())
}

// Verify - r || s over sha256(digest); high S is rejected
func (k *Secp256k1PublicKey) Verify(digest []byte, signature []byte) bool {
	if SignatureSize != len(signature) {
		return false
	}

	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(signature[:32]) || s.SetByteSlice(signature[32:]) {
		return false
	}
	if r.IsZero() || s.IsZero() || s.IsOverHalfOrder() {
		return false
	}

	hash := sha256.Sum256(digest)
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], k.key)
}

// String - base64 of flag || key
func (k *Secp256k1PublicKey) String() string {
	return publicKeyString(Secp256k1, k.key.SerializeCompressed())
}

// Scheme - Secp256k1
func (s *Secp256k1Signer) Scheme() Scheme {
	return Secp256k1
}

// PublicKey - matching verification key
func (s *Secp256k1Signer) PublicKey() PublicKey {
	return &Secp256k1PublicKey{key: s.key.PubKey()}
}

// Sign - deterministic RFC6979 signature, always low S
func (s *Secp256k1Signer) Sign(digest []byte) ([]byte, error) {
	hash := sha256.Sum256(digest)

	// compact form is recovery byte || r || s
	compact := ecdsa.SignCompact(s.key, hash[:], true)
	return compact[1:], nil
}

// Secret - 32 byte scalar
func (s *Secp256k1Signer) Secret() []byte {
	return s.key.Serialize()
}
