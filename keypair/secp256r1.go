// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/bitmark-inc/suicore/fault"
)

// Secp256r1PublicKey - compressed P-256 point; signatures cover sha256(digest)
type Secp256r1PublicKey struct {
	key *ecdsa.PublicKey
}

// Secp256r1Signer - private key
type Secp256r1Signer struct {
	key *ecdsa.PrivateKey
}

var (
	p256          = elliptic.P256()
	p256Order     = p256.Params().N
	p256HalfOrder = new(big.Int).Rsh(p256Order, 1)
)

func generateSecp256r1() (*Secp256r1Signer, error) {
	priv, err := ecdsa.GenerateKey(p256, rand.Reader)
	if nil != err {
		return nil, err
	}
	return &Secp256r1Signer{key: priv}, nil
}

// ecdh validates the scalar range and computes the public point
func secp256r1FromSecret(secret []byte) (*Secp256r1Signer, error) {
	k, err := ecdh.P256().NewPrivateKey(secret)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}

	// uncompressed: 0x04 || x || y
	point := k.PublicKey().Bytes()
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: p256,
			X:     new(big.Int).SetBytes(point[1:33]),
			Y:     new(big.Int).SetBytes(point[33:65]),
		},
		D: new(big.Int).SetBytes(secret),
	}
	return &Secp256r1Signer{key: priv}, nil
}

func secp256r1PublicKeyFromBytes(raw []byte) (*Secp256r1PublicKey, error) {
	if ECPublicKeySize != len(raw) {
		return nil, fault.ErrInvalidKeyLength
	}
	x, y := elliptic.UnmarshalCompressed(p256, raw)
	if nil == x {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Secp256r1PublicKey{
		key: &ecdsa.PublicKey{Curve: p256, X: x, Y: y},
	}, nil
}

// Scheme - Secp256r1
func (k *Secp256r1PublicKey) Scheme() Scheme {
	return Secp256r1
}

// Bytes - 33 byte compressed point
func (k *Secp256r1PublicKey) Bytes() []byte {
	return elliptic.MarshalCompressed(p256, k.key.X, k.key.Y)
}

// SuiBytes - flag || compressed point
func (k *Secp256r1PublicKey) SuiBytes() []byte {
	return suiBytes(Secp256r1, k.Bytes())
}

// Verify - r || s over sha256(digest); high S is rejected
func (k *Secp256r1PublicKey) Verify(digest []byte, signature []byte) bool {
	if SignatureSize != len(signature) {
		return false
	}
	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])
	if s.Cmp(p256HalfOrder) > 0 {
		return false
	}

	hash := sha256.Sum256(digest)
	return ecdsa.Verify(k.key, hash[:], r, s)
}

// String - base64 of flag || key
func (k *Secp256r1PublicKey) String() string {
	return publicKeyString(Secp256r1, k.Bytes())
}

// Scheme - Secp256r1
func (s *Secp256r1Signer) Scheme() Scheme {
	return Secp256r1
}

// PublicKey - matching verification key
func (s *Secp256r1Signer) PublicKey() PublicKey {
	return &Secp256r1PublicKey{key: &s.key.PublicKey}
}

// Sign - r || s over sha256(digest), S normalised to the lower half
func (s *Secp256r1Signer) Sign(digest []byte) ([]byte, error) {
	hash := sha256.Sum256(digest)
	r, sigS, err := ecdsa.Sign(rand.Reader, s.key, hash[:])
	if nil != err {
		return nil, err
	}
	if sigS.Cmp(p256HalfOrder) > 0 {
		sigS = new(big.Int).Sub(p256Order, sigS)
	}

	signature := make([]byte, SignatureSize)
	r.FillBytes(signature[:32])
	sigS.FillBytes(signature[32:])
	return signature, nil
}

// Secret - 32 byte scalar
func (s *Secp256r1Signer) Secret() []byte {
	secret := make([]byte, SecretSize)
	s.key.D.FillBytes(secret)
	return secret
}
