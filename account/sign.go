// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/intent"
	"github.com/bitmark-inc/suicore/keypair"
)

// Sign - sign a message under the given intent scope
//
// the message must already be in its signed form; for personal
// messages use SignPersonalMessage which adds the bcs length prefix
func Sign(scope intent.Scope, signer keypair.Signer, message []byte) (SerializedSignature, error) {
	digest := intent.Digest(scope, message)
	sig, err := signer.Sign(digest[:])
	if nil != err {
		return nil, err
	}
	return ToSerializedSignature(signer.Scheme(), sig, signer.PublicKey().Bytes())
}

// SignTransaction - sign packed transaction bytes
func SignTransaction(signer keypair.Signer, txBytes []byte) (SerializedSignature, error) {
	return Sign(intent.TransactionData, signer, txBytes)
}

// SignPersonalMessage - sign arbitrary bytes
func SignPersonalMessage(signer keypair.Signer, message []byte) (SerializedSignature, error) {
	return Sign(intent.PersonalMessage, signer, intent.EncodePersonalMessage(message))
}

// Verify - check a signature over a message under the scope
//
// structural problems are reported before any cryptography; a well
// formed signature that does not verify is fault.ErrSignatureMismatch
func Verify(scope intent.Scope, message []byte, signature SerializedSignature) (keypair.PublicKey, error) {
	sig, err := SerializedSignatureFromBytes(signature)
	if nil != err {
		return nil, err
	}
	pub, err := sig.PublicKey()
	if nil != err {
		return nil, err
	}

	digest := intent.Digest(scope, message)
	if !pub.Verify(digest[:], sig.Signature()) {
		return nil, fault.ErrSignatureMismatch
	}
	return pub, nil
}

// VerifyTransaction - check a transaction signature
func VerifyTransaction(txBytes []byte, signature SerializedSignature) (keypair.PublicKey, error) {
	return Verify(intent.TransactionData, txBytes, signature)
}

// VerifyPersonalMessage - check a personal message signature
func VerifyPersonalMessage(message []byte, signature SerializedSignature) (keypair.PublicKey, error) {
	return Verify(intent.PersonalMessage, intent.EncodePersonalMessage(message), signature)
}
