// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/intent"
	"github.com/bitmark-inc/suicore/keypair"
	"github.com/bitmark-inc/suicore/multisig"
	"github.com/bitmark-inc/suicore/multisig/mocks"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

var tx = []byte{0x00, 0x00, 0x02, 0x04, 0x08}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = multisig.Initialise()
}

func teardownTestLogger() {
	_ = multisig.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// one member of each scheme
func threeSigners(t *testing.T) []keypair.Signer {
	signers := []keypair.Signer{}
	for _, scheme := range []keypair.Scheme{keypair.Ed25519, keypair.Secp256k1, keypair.Secp256r1} {
		s, err := keypair.Generate(scheme)
		require.Nil(t, err, "%s: generate", scheme)
		signers = append(signers, s)
	}
	return signers
}

func membersOf(signers []keypair.Signer, weights ...uint8) []multisig.Member {
	members := []multisig.Member{}
	for i, s := range signers {
		m := multisig.Member{PublicKey: s.PublicKey()}
		if i < len(weights) {
			m.Weight = weights[i]
		}
		members = append(members, m)
	}
	return members
}

func combine(t *testing.T, pk *multisig.PublicKey, signers []keypair.Signer, indexes ...int) *multisig.Signature {
	b := multisig.NewBuilder(pk)
	for _, i := range indexes {
		sig, err := account.SignTransaction(signers[i], tx)
		require.Nil(t, err, "sign: %d", i)
		require.Nil(t, b.Add(i, sig), "add: %d", i)
	}
	s, err := b.Build()
	require.Nil(t, err, "build")
	return s
}

func TestTwoOfThree(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")
	assert.Equal(t, 3, pk.TotalWeight(), "unit weights")

	for _, pair := range [][]int{{0, 1}, {0, 2}, {1, 2}, {2, 0}, {0, 1, 2}} {
		s := combine(t, pk, signers, pair...)
		assert.Nil(t, multisig.Verify(intent.TransactionData, tx, pk, s), "members: %v", pair)
	}

	for _, single := range []int{0, 1, 2} {
		s := combine(t, pk, signers, single)
		err := multisig.Verify(intent.TransactionData, tx, pk, s)
		assert.Equal(t, fault.ErrThresholdNotMet, err, "member: %d", single)
		assert.True(t, fault.IsErrVerification(err), "verification class")
	}

	s := combine(t, pk, signers, 0, 1)
	err = multisig.Verify(intent.PersonalMessage, tx, pk, s)
	assert.Equal(t, fault.ErrThresholdNotMet, err, "other scope")
}

func TestStructuralErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")

	s := combine(t, pk, signers, 0)
	s.Bitmap = 0x03
	err = multisig.Verify(intent.TransactionData, tx, pk, s)
	assert.Equal(t, fault.ErrSignatureCountMismatch, err, "two bits one signature")
	assert.True(t, fault.IsErrStructural(err), "structural")

	s = combine(t, pk, signers, 0, 1)
	s.Bitmap = 0x01
	err = multisig.Verify(intent.TransactionData, tx, pk, s)
	assert.Equal(t, fault.ErrSignatureCountMismatch, err, "one bit two signatures")

	s = combine(t, pk, signers, 0, 1)
	s.Bitmap = 0x01 | 0x20
	err = multisig.Verify(intent.TransactionData, tx, pk, s)
	assert.Equal(t, fault.ErrBitmapOutOfRange, err, "bit beyond members")
	assert.True(t, fault.IsErrStructural(err), "structural")
}

func TestBuilderOrder(t *testing.T) {
	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")

	sig0, err := account.SignTransaction(signers[0], tx)
	require.Nil(t, err, "sign 0")
	sig2, err := account.SignTransaction(signers[2], tx)
	require.Nil(t, err, "sign 2")

	b := multisig.NewBuilder(pk)
	require.Nil(t, b.Add(2, sig2), "add 2")
	require.Nil(t, b.AddSigned(sig0), "add 0 by key")

	s, err := b.Build()
	require.Nil(t, err, "build")
	assert.Equal(t, uint16(0x05), s.Bitmap, "bitmap")
	assert.Equal(t, 2, s.Count(), "count")
	assert.Equal(t, sig0.Signature(), s.Signatures[0], "lowest member first")
	assert.Equal(t, sig2.Signature(), s.Signatures[1], "then member 2")
}

func TestBuilderErrors(t *testing.T) {
	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")

	sig0, err := account.SignTransaction(signers[0], tx)
	require.Nil(t, err, "sign")

	b := multisig.NewBuilder(pk)
	_, err = b.Build()
	assert.Equal(t, fault.ErrEmptyArguments, err, "nothing added")

	assert.Equal(t, fault.ErrBitmapOutOfRange, b.Add(3, sig0), "index past members")
	assert.Equal(t, fault.ErrBitmapOutOfRange, b.Add(-1, sig0), "negative index")
	assert.Equal(t, fault.ErrMemberKeyMismatch, b.Add(1, sig0), "wrong member")
	assert.Nil(t, b.Add(0, sig0), "right member")
	assert.Equal(t, fault.ErrDuplicateSignature, b.Add(0, sig0), "twice")

	outsider, err := keypair.Generate(keypair.Ed25519)
	require.Nil(t, err, "outsider")
	outsiderSig, err := account.SignTransaction(outsider, tx)
	require.Nil(t, err, "outsider sign")
	assert.Equal(t, fault.ErrMemberKeyMismatch, b.AddSigned(outsiderSig), "not a member")

	assert.Equal(t, fault.ErrInvalidSignatureLength, b.Add(0, sig0[:10]), "short signature")
}

func TestWeights(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers, 2, 1, 1), 2)
	require.Nil(t, err, "public key")
	assert.Equal(t, 4, pk.TotalWeight(), "total")

	assert.Nil(t, multisig.Verify(intent.TransactionData, tx, pk, combine(t, pk, signers, 0)), "heavy member alone")
	assert.Equal(t, fault.ErrThresholdNotMet, multisig.Verify(intent.TransactionData, tx, pk, combine(t, pk, signers, 1)), "light member alone")
	assert.Nil(t, multisig.Verify(intent.TransactionData, tx, pk, combine(t, pk, signers, 1, 2)), "two light members")
}

func TestPublicKeyErrors(t *testing.T) {
	signers := threeSigners(t)
	members := membersOf(signers)

	_, err := multisig.NewPublicKey(nil, 1)
	assert.Equal(t, fault.ErrTooFewMembers, err, "no members")

	_, err = multisig.NewPublicKey(members, 0)
	assert.Equal(t, fault.ErrInvalidThreshold, err, "zero threshold")

	_, err = multisig.NewPublicKey(members, 4)
	assert.Equal(t, fault.ErrInvalidThreshold, err, "threshold above weight")

	_, err = multisig.NewPublicKey(append(members, members[1]), 2)
	assert.Equal(t, fault.ErrDuplicateMember, err, "duplicate")

	many := []multisig.Member{}
	for i := 0; i < multisig.MaximumMembers+1; i += 1 {
		s, err := keypair.Generate(keypair.Ed25519)
		require.Nil(t, err, "generate")
		many = append(many, multisig.Member{PublicKey: s.PublicKey()})
	}
	_, err = multisig.NewPublicKey(many, 1)
	assert.Equal(t, fault.ErrTooManyMembers, err, "eleven")

	_, err = multisig.NewPublicKey(many[:multisig.MaximumMembers], 10)
	assert.Nil(t, err, "ten")
}

func TestPublicKeyEncoding(t *testing.T) {
	first, err := keypair.FromSecret(keypair.Ed25519, make([]byte, 32))
	require.Nil(t, err, "first")
	secret := make([]byte, 32)
	secret[31] = 1
	second, err := keypair.FromSecret(keypair.Ed25519, secret)
	require.Nil(t, err, "second")

	pk, err := multisig.NewPublicKey(membersOf([]keypair.Signer{first, second}), 2)
	require.Nil(t, err, "public key")
	assert.False(t, pk.IsWeighted(), "unit weights")

	expected := []byte{byte(keypair.MultiSig), 0x02, 0x02}
	for _, s := range []keypair.Signer{first, second} {
		expected = append(expected, 33)
		expected = append(expected, s.PublicKey().SuiBytes()...)
	}

	b, err := pk.Bytes()
	require.Nil(t, err, "bytes")
	assert.Equal(t, expected, b, "flag, count, threshold, length prefixed keys")
	assert.Equal(t, 71, len(b), "total length")
	assert.Equal(t, b, pk.Encoded(), "encoded")

	digest := blake2b.Sum256(b)
	a := pk.Address()
	assert.Equal(t, digest[:], a.Bytes(), "address")

	parsed, err := multisig.ParsePublicKey(expected)
	require.Nil(t, err, "parse")
	assert.Equal(t, uint16(2), parsed.Threshold(), "threshold")
	assert.Equal(t, uint8(multisig.DefaultWeight), parsed.Members()[1].Weight, "weight")
	assert.Equal(t, pk.Address(), parsed.Address(), "round trip")

	text, err := multisig.ParsePublicKeyBase64(pk.String())
	require.Nil(t, err, "base64")
	assert.Equal(t, pk.Address(), text.Address(), "base64 round trip")

	items := []struct {
		raw []byte
		err error
	}{
		{b[:2], fault.ErrTruncatedInput},
		{b[:len(b)-1], fault.ErrTruncatedInput},
		{append(append([]byte{}, b...), 0x00), fault.ErrTrailingBytes},
		{append([]byte{0x00}, b[1:]...), fault.ErrUnsupportedScheme},
		{[]byte{0x03, 0x00, 0x01}, fault.ErrTooFewMembers},
		{[]byte{0x03, 0x0b, 0x01}, fault.ErrTooManyMembers},
		{[]byte{0x03, 0x02, 0x03}, fault.ErrTruncatedInput},
	}
	for i, item := range items {
		_, err := multisig.ParsePublicKey(item.raw)
		assert.Equal(t, item.err, err, "%d: error", i)
	}

	threshold := append([]byte{}, b...)
	threshold[2] = 3
	_, err = multisig.ParsePublicKey(threshold)
	assert.Equal(t, fault.ErrInvalidThreshold, err, "threshold above count")
}

func TestWeightedPublicKeyEncoding(t *testing.T) {
	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers, 1, 2, 3), 3)
	require.Nil(t, err, "public key")
	assert.True(t, pk.IsWeighted(), "weighted")

	_, err = pk.Bytes()
	assert.Equal(t, fault.ErrInvalidWeight, err, "no unweighted form")

	b := pk.WeightedBytes()
	assert.Equal(t, b, pk.Encoded(), "encoded")
	assert.Equal(t, byte(keypair.MultiSig), b[0], "flag")
	assert.Equal(t, byte(3), b[1], "count")
	assert.Equal(t, []byte{0x03, 0x00}, b[2:4], "threshold")
	assert.Equal(t, byte(33), b[4], "first key length")
	assert.Equal(t, byte(keypair.Ed25519), b[5], "first key flag")
	assert.Equal(t, 4+(1+33+1)+(1+34+1)+(1+34+1), len(b), "total length")

	digest := blake2b.Sum256(b)
	a := pk.Address()
	assert.Equal(t, digest[:], a.Bytes(), "address")

	parsed, err := multisig.ParseWeightedPublicKey(b)
	require.Nil(t, err, "parse")
	assert.Equal(t, b, parsed.WeightedBytes(), "round trip")
	assert.Equal(t, uint16(3), parsed.Threshold(), "threshold")
	assert.Equal(t, uint8(2), parsed.Members()[1].Weight, "weight")

	_, err = multisig.ParsePublicKey(b)
	assert.NotNil(t, err, "weighted bytes are not the unweighted form")

	text, err := multisig.ParsePublicKeyBase64(pk.String())
	require.Nil(t, err, "base64")
	assert.Equal(t, pk.Address(), text.Address(), "base64 round trip")

	reweighted, err := multisig.NewPublicKey(membersOf(signers, 1, 1, 1), 3)
	require.Nil(t, err, "reweighted")
	assert.NotEqual(t, pk.Address(), reweighted.Address(), "weights change the address")

	items := []struct {
		raw []byte
		err error
	}{
		{b[:3], fault.ErrTruncatedInput},
		{b[:len(b)-1], fault.ErrTruncatedInput},
		{append(append([]byte{}, b...), 0x00), fault.ErrTrailingBytes},
		{append([]byte{0x00}, b[1:]...), fault.ErrUnsupportedScheme},
		{[]byte{0x03, 0x00, 0x01, 0x00}, fault.ErrTooFewMembers},
		{[]byte{0x03, 0x0b, 0x01, 0x00}, fault.ErrTooManyMembers},
	}
	for i, item := range items {
		_, err := multisig.ParseWeightedPublicKey(item.raw)
		assert.Equal(t, item.err, err, "%d: error", i)
	}

	zeroWeight := append([]byte{}, b...)
	zeroWeight[4+1+33] = 0
	_, err = multisig.ParseWeightedPublicKey(zeroWeight)
	assert.Equal(t, fault.ErrInvalidWeight, err, "zero weight")
}

func TestSignatureEncoding(t *testing.T) {
	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")

	s := combine(t, pk, signers, 1, 2)
	b := s.Bytes()
	assert.Equal(t, []byte{0x03, 0x02, 0x06, 0x00, 64}, b[:5], "header")
	assert.Equal(t, 4+2*65, len(b), "length")

	parsed, err := multisig.ParseSignature(b)
	require.Nil(t, err, "parse")
	assert.Equal(t, s, parsed, "round trip")

	fromText, err := multisig.ParseSignatureBase64(s.String())
	require.Nil(t, err, "base64")
	assert.Equal(t, s, fromText, "text round trip")

	var unmarshalled multisig.Signature
	require.Nil(t, unmarshalled.UnmarshalText([]byte(s.String())), "unmarshal")
	assert.Equal(t, *s, unmarshalled, "unmarshal text")

	items := []struct {
		raw []byte
		err error
	}{
		{b[:3], fault.ErrTruncatedInput},
		{b[:len(b)-1], fault.ErrTruncatedInput},
		{append([]byte{0x00}, b[1:]...), fault.ErrUnsupportedScheme},
		{append([]byte{0x03, 0x03}, b[2:]...), fault.ErrInvalidSignatureLength},
		{append([]byte{0x03, 0x02, 0x01, 0x00, 63}, make([]byte, 63)...), fault.ErrInvalidSignatureLength},
	}
	for i, item := range items {
		_, err := multisig.ParseSignature(item.raw)
		assert.Equal(t, item.err, err, "%d: error", i)
	}
}

// every set bit is checked even after a failure
func TestNoShortCircuit(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers), 2)
	require.Nil(t, err, "public key")
	s := &multisig.Signature{
		Bitmap:     0x07,
		Signatures: [][]byte{make([]byte, 64), make([]byte, 64), make([]byte, 64)},
	}

	verifier := mocks.NewMockVerifier(ctl)
	gomock.InOrder(
		verifier.EXPECT().VerifyMember(signers[0].PublicKey(), gomock.Any(), gomock.Any()).Return(false).Times(1),
		verifier.EXPECT().VerifyMember(signers[1].PublicKey(), gomock.Any(), gomock.Any()).Return(true).Times(1),
		verifier.EXPECT().VerifyMember(signers[2].PublicKey(), gomock.Any(), gomock.Any()).Return(true).Times(1),
	)
	assert.Nil(t, multisig.VerifyWith(verifier, intent.TransactionData, tx, pk, s), "two of three")

	verifier = mocks.NewMockVerifier(ctl)
	verifier.EXPECT().VerifyMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(3)
	err = multisig.VerifyWith(verifier, intent.TransactionData, tx, pk, s)
	assert.Equal(t, fault.ErrThresholdNotMet, err, "none valid")
}

func TestDigestPassedToVerifier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signers := threeSigners(t)
	pk, err := multisig.NewPublicKey(membersOf(signers[:1]), 1)
	require.Nil(t, err, "public key")

	signature := make([]byte, 64)
	signature[0] = 0x42
	digest := intent.TransactionDigest(tx)

	verifier := mocks.NewMockVerifier(ctl)
	verifier.EXPECT().VerifyMember(gomock.Any(), digest[:], signature).Return(true).Times(1)

	s := &multisig.Signature{Bitmap: 0x01, Signatures: [][]byte{signature}}
	assert.Nil(t, multisig.VerifyWith(verifier, intent.TransactionData, tx, pk, s), "verified")
}

func TestInitialise(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	assert.Equal(t, fault.ErrAlreadyInitialised, multisig.Initialise(), "second initialise")
}
