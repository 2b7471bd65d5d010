// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/intent"
	"github.com/bitmark-inc/suicore/keypair"
)

var schemes = []keypair.Scheme{keypair.Ed25519, keypair.Secp256k1, keypair.Secp256r1}

func TestAddress(t *testing.T) {
	for _, scheme := range schemes {
		signer, err := keypair.Generate(scheme)
		require.Nil(t, err, "%s: generate", scheme)
		pub := signer.PublicKey()

		expected := blake2b.Sum256(append([]byte{byte(scheme)}, pub.Bytes()...))
		a := account.AddressOf(pub)
		assert.Equal(t, expected[:], a.Bytes(), "%s: address", scheme)
		assert.Equal(t, a, account.New(pub).Address(), "%s: wrapper", scheme)

		j, err := json.Marshal(account.New(pub))
		require.Nil(t, err, "%s: json", scheme)
		assert.Equal(t, `"`+a.String()+`"`, string(j), "%s: json text", scheme)
	}
}

func TestSignAndVerify(t *testing.T) {
	tx := []byte{0x00, 0x00, 0x01, 0x02, 0x03}
	message := []byte("hello world")

	for _, scheme := range schemes {
		signer, err := keypair.Generate(scheme)
		require.Nil(t, err, "%s: generate", scheme)

		txSig, err := account.SignTransaction(signer, tx)
		require.Nil(t, err, "%s: sign tx", scheme)
		assert.Equal(t, scheme, txSig.Scheme(), "%s: flag", scheme)

		pub, err := account.VerifyTransaction(tx, txSig)
		require.Nil(t, err, "%s: verify tx", scheme)
		assert.Equal(t, signer.PublicKey().Bytes(), pub.Bytes(), "%s: recovered key", scheme)

		msgSig, err := account.SignPersonalMessage(signer, message)
		require.Nil(t, err, "%s: sign message", scheme)
		_, err = account.VerifyPersonalMessage(message, msgSig)
		assert.Nil(t, err, "%s: verify message", scheme)

		// a signature under one scope never verifies under another
		_, err = account.VerifyPersonalMessage(tx, txSig)
		assert.Equal(t, fault.ErrSignatureMismatch, err, "%s: tx as message", scheme)
		_, err = account.VerifyTransaction(intent.EncodePersonalMessage(message), msgSig)
		assert.Equal(t, fault.ErrSignatureMismatch, err, "%s: message as tx", scheme)

		_, err = account.VerifyTransaction(append(tx, 0x00), txSig)
		assert.Equal(t, fault.ErrSignatureMismatch, err, "%s: changed tx", scheme)
		assert.True(t, fault.IsErrVerification(err), "%s: verification class", scheme)
	}
}

func TestBitFlips(t *testing.T) {
	signer, err := keypair.Generate(keypair.Ed25519)
	require.Nil(t, err, "generate")
	message := []byte("flip")

	sig, err := account.SignPersonalMessage(signer, message)
	require.Nil(t, err, "sign")

	for i := 1; i < 1+keypair.SignatureSize; i += 7 {
		flipped := append(account.SerializedSignature{}, sig...)
		flipped[i] ^= 0x80
		_, err := account.VerifyPersonalMessage(message, flipped)
		assert.Equal(t, fault.ErrSignatureMismatch, err, "byte: %d", i)
	}

	other, err := keypair.Generate(keypair.Ed25519)
	require.Nil(t, err, "other")
	swapped := append(account.SerializedSignature{}, sig[:1+keypair.SignatureSize]...)
	swapped = append(swapped, other.PublicKey().Bytes()...)
	_, err = account.VerifyPersonalMessage(message, swapped)
	assert.Equal(t, fault.ErrSignatureMismatch, err, "wrong key")
}

func TestSerializedSignatureLayout(t *testing.T) {
	signer, err := keypair.Generate(keypair.Secp256k1)
	require.Nil(t, err, "generate")

	sig, err := account.SignTransaction(signer, []byte{1})
	require.Nil(t, err, "sign")
	assert.Equal(t, 1+64+33, len(sig), "length")
	assert.Equal(t, byte(keypair.Secp256k1), sig[0], "flag")
	assert.Equal(t, signer.PublicKey().Bytes(), sig.PublicKeyBytes(), "key")
	assert.Equal(t, 64, len(sig.Signature()), "signature")

	parsed, err := account.ParseSerializedSignature(sig.String())
	require.Nil(t, err, "parse")
	assert.Equal(t, sig, parsed, "round trip")

	j, err := json.Marshal(sig)
	require.Nil(t, err, "json")
	var fromJSON account.SerializedSignature
	require.Nil(t, json.Unmarshal(j, &fromJSON), "json decode")
	assert.Equal(t, sig, fromJSON, "json round trip")
}

func TestSerializedSignatureErrors(t *testing.T) {
	_, err := account.ToSerializedSignature(keypair.Ed25519, make([]byte, 63), make([]byte, 32))
	assert.Equal(t, fault.ErrInvalidSignatureLength, err, "short signature")
	_, err = account.ToSerializedSignature(keypair.Ed25519, make([]byte, 64), make([]byte, 33))
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "long key")
	_, err = account.ToSerializedSignature(keypair.MultiSig, make([]byte, 64), make([]byte, 32))
	assert.Equal(t, fault.ErrUnsupportedScheme, err, "multisig")

	items := []struct {
		raw []byte
		err error
	}{
		{nil, fault.ErrInvalidSignatureLength},
		{make([]byte, 1+64+33), fault.ErrInvalidSignatureLength},
		{append([]byte{0x01}, make([]byte, 64+32)...), fault.ErrInvalidSignatureLength},
		{append([]byte{0x03}, make([]byte, 64+32)...), fault.ErrUnsupportedScheme},
		{append([]byte{0x09}, make([]byte, 64+32)...), fault.ErrUnsupportedScheme},
	}
	for i, item := range items {
		_, err := account.ParseSerializedSignature(base64.StdEncoding.EncodeToString(item.raw))
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.True(t, fault.IsErrStructural(err), "%d: structural", i)
	}

	_, err = account.ParseSerializedSignature("%%%")
	assert.Equal(t, fault.ErrInvalidSignatureLength, err, "not base64")

	// correct length but the key is not a curve point
	bad := append([]byte{0x01}, make([]byte, 64+33)...)
	_, err = account.VerifyTransaction([]byte{1}, bad)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "bad point")
}
