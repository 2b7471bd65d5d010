// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/intent"
	"github.com/bitmark-inc/suicore/multisig"
	"github.com/bitmark-inc/suicore/transaction"
	"github.com/bitmark-inc/suicore/util"
)

type digestResult struct {
	Digest       transaction.Digest `json:"digest"`
	IntentDigest string             `json:"intent_digest"`
}

type multisigVerifyResult struct {
	Valid   bool        `json:"valid"`
	Members int         `json:"members"`
	Signers int         `json:"signers"`
	Address bcs.Address `json:"address"`
	Error   string      `json:"error,omitempty"`
}

type taggedItem struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

type decodedTransaction struct {
	Digest     transaction.Digest     `json:"digest"`
	Sender     bcs.Address            `json:"sender"`
	Gas        transaction.GasData    `json:"gas"`
	Expiration transaction.Expiration `json:"expiration"`
	Inputs     []taggedItem           `json:"inputs"`
	Commands   []taggedItem           `json:"commands"`
}

func runSignTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkPrivateKey(c.String("private-key"))
	if nil != err {
		return err
	}
	packed, err := checkTransaction(c.String("tx"))
	if nil != err {
		return err
	}

	// refuse to sign bytes that are not a transaction
	if _, err := packed.Unpack(); nil != err {
		return err
	}

	signature, err := account.SignTransaction(signer, packed)
	if nil != err {
		return err
	}

	return printJson(m.w, signatureResult{
		Signature: signature,
		Address:   account.AddressOf(signer.PublicKey()),
		Digest:    packed.Digest().String(),
	})
}

func runVerifyTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("tx"))
	if nil != err {
		return err
	}
	text := c.String("signature")
	if "" == text {
		return ErrRequiredSignature
	}

	multisigKey := c.String("multisig")
	if "" == multisigKey {
		signature, err := account.ParseSerializedSignature(text)
		if nil != err {
			return err
		}
		_, err = account.VerifyTransaction(packed, signature)
		return reportVerification(m, verification(signature, err), err)
	}

	pk, err := multisig.ParsePublicKeyBase64(multisigKey)
	if nil != err {
		return err
	}
	sig, err := multisig.ParseSignatureBase64(text)
	if nil != err {
		return err
	}

	err = multisig.Verify(intent.TransactionData, packed, pk, sig)
	result := multisigVerifyResult{
		Valid:   nil == err,
		Members: len(pk.Members()),
		Signers: sig.Count(),
		Address: pk.Address(),
	}
	if nil != err {
		result.Error = err.Error()
	}
	return reportVerification(m, result, err)
}

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("tx"))
	if nil != err {
		return err
	}

	d := intent.TransactionDigest(packed)
	return printJson(m.w, digestResult{
		Digest:       packed.Digest(),
		IntentDigest: hex.EncodeToString(d[:]),
	})
}

func runDecodeTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("tx"))
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", util.FormatBytes("transaction", packed))
	}

	data, err := packed.Unpack()
	if nil != err {
		return err
	}

	decoded := decodedTransaction{
		Digest:     packed.Digest(),
		Sender:     data.Sender,
		Gas:        data.Gas,
		Expiration: data.Expiration,
		Inputs:     make([]taggedItem, 0, len(data.Inputs)),
		Commands:   make([]taggedItem, 0, len(data.Commands)),
	}
	for _, in := range data.Inputs {
		decoded.Inputs = append(decoded.Inputs, taggedItem{Kind: inputKind(in), Value: in})
	}
	for _, cmd := range data.Commands {
		decoded.Commands = append(decoded.Commands, taggedItem{Kind: commandKind(cmd), Value: cmd})
	}

	return printJson(m.w, decoded)
}

func inputKind(arg transaction.CallArg) string {
	switch arg.(type) {
	case transaction.Pure:
		return "Pure"
	case transaction.ImmOrOwnedObject:
		return "ImmOrOwnedObject"
	case transaction.SharedObject:
		return "SharedObject"
	case transaction.ReceivingObject:
		return "Receiving"
	default:
		return "Unresolved"
	}
}

func commandKind(cmd transaction.Command) string {
	switch cmd.Tag() {
	case transaction.MoveCallTag:
		return "MoveCall"
	case transaction.TransferObjectsTag:
		return "TransferObjects"
	case transaction.SplitCoinsTag:
		return "SplitCoins"
	case transaction.MergeCoinsTag:
		return "MergeCoins"
	case transaction.PublishTag:
		return "Publish"
	case transaction.MakeMoveVecTag:
		return "MakeMoveVec"
	case transaction.UpgradeTag:
		return "Upgrade"
	default:
		return "Unknown"
	}
}
