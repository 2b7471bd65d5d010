// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
)

type signatureResult struct {
	Signature account.SerializedSignature `json:"signature"`
	Address   bcs.Address                 `json:"address"`
	Digest    string                      `json:"digest,omitempty"`
}

type verifyResult struct {
	Valid   bool        `json:"valid"`
	Scheme  string      `json:"scheme"`
	Address bcs.Address `json:"address"`
	Error   string      `json:"error,omitempty"`
}

func runSignMessage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkPrivateKey(c.String("private-key"))
	if nil != err {
		return err
	}
	message := c.String("message")
	if "" == message {
		return ErrRequiredMessage
	}

	signature, err := account.SignPersonalMessage(signer, []byte(message))
	if nil != err {
		return err
	}

	return printJson(m.w, signatureResult{
		Signature: signature,
		Address:   account.AddressOf(signer.PublicKey()),
	})
}

func runVerifyMessage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	message := c.String("message")
	if "" == message {
		return ErrRequiredMessage
	}
	text := c.String("signature")
	if "" == text {
		return ErrRequiredSignature
	}
	signature, err := account.ParseSerializedSignature(text)
	if nil != err {
		return err
	}

	_, err = account.VerifyPersonalMessage([]byte(message), signature)
	return reportVerification(m, verification(signature, err), err)
}

// the signature embeds the key so the address is known either way
func verification(signature account.SerializedSignature, err error) verifyResult {
	result := verifyResult{
		Valid:   nil == err,
		Scheme:  signature.Scheme().String(),
		Address: account.AddressFromSuiBytes(append([]byte{byte(signature.Scheme())}, signature.PublicKeyBytes()...)),
	}
	if nil != err {
		result.Error = err.Error()
	}
	return result
}

// print the outcome, a failed check also fails the command
func reportVerification(m *metadata, result interface{}, err error) error {
	if e := printJson(m.w, result); nil != e {
		return e
	}
	if nil != err {
		m.log.Warnf("verification failed: %s", err)
	}
	return err
}
