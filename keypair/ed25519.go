// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/suicore/fault"
)

// Ed25519PublicKey - signs the intent digest directly
type Ed25519PublicKey struct {
	key ed25519.PublicKey
}

// Ed25519Signer - private key
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

func generateEd25519() (*Ed25519Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &Ed25519Signer{key: priv}, nil
}

func ed25519FromSecret(secret []byte) (*Ed25519Signer, error) {
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(secret)}, nil
}

func ed25519PublicKeyFromBytes(raw []byte) (*Ed25519PublicKey, error) {
	if ed25519.PublicKeySize != len(raw) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Ed25519PublicKey{key: append(ed25519.PublicKey{}, raw...)}, nil
}

// Scheme - Ed25519
func (k *Ed25519PublicKey) Scheme() Scheme {
	return Ed25519
}

// Bytes - 32 byte raw key
func (k *Ed25519PublicKey) Bytes() []byte {
	return append([]byte{}, k.key...)
}

// SuiBytes - flag || key
func (k *Ed25519PublicKey) SuiBytes() []byte {
	return suiBytes(Ed25519, k.key)
}

// Verify - check a 64 byte signature over the digest
func (k *Ed25519PublicKey) Verify(digest []byte, signature []byte) bool {
	if ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(k.key, digest, signature)
}

// String - base64 of flag || key
func (k *Ed25519PublicKey) String() string {
	return publicKeyString(Ed25519, k.key)
}

// Scheme - Ed25519
func (s *Ed25519Signer) Scheme() Scheme {
	return Ed25519
}

// PublicKey - matching verification key
func (s *Ed25519Signer) PublicKey() PublicKey {
	pub := s.key.Public().(ed25519.PublicKey)
	return &Ed25519PublicKey{key: pub}
}

// Sign - sign the digest, deterministic
func (s *Ed25519Signer) Sign(digest []byte) ([]byte, error) {
	return ed25519.Sign(s.key, digest), nil
}

// Secret - the 32 byte seed
func (s *Ed25519Signer) Secret() []byte {
	return append([]byte{}, s.key.Seed()...)
}
