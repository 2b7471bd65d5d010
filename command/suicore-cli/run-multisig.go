// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/multisig"
)

type multisigKeyResult struct {
	PublicKey   string      `json:"public_key"`
	Address     bcs.Address `json:"address"`
	Threshold   uint16      `json:"threshold"`
	TotalWeight int         `json:"total_weight"`
}

type multisigSignatureResult struct {
	Signature string `json:"signature"`
	Bitmap    string `json:"bitmap"`
	Signers   int    `json:"signers"`
}

func runMultisigAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := c.StringSlice("key")
	if 0 == len(keys) {
		return ErrRequiredKey
	}
	threshold := c.Int("threshold")
	if threshold <= 0 || threshold > math.MaxUint16 {
		return ErrThresholdOutOfRange
	}

	members := make([]multisig.Member, 0, len(keys))
	for _, k := range keys {
		member, err := parseMember(k)
		if nil != err {
			return err
		}
		members = append(members, member)
	}

	pk, err := multisig.NewPublicKey(members, uint16(threshold))
	if nil != err {
		return err
	}

	return printJson(m.w, multisigKeyResult{
		PublicKey:   pk.String(),
		Address:     pk.Address(),
		Threshold:   pk.Threshold(),
		TotalWeight: pk.TotalWeight(),
	})
}

func runMultisigCombine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("multisig")
	if "" == text {
		return ErrRequiredMultisig
	}
	pk, err := multisig.ParsePublicKeyBase64(text)
	if nil != err {
		return err
	}

	signatures := c.StringSlice("signature")
	if 0 == len(signatures) {
		return ErrRequiredSignature
	}

	b := multisig.NewBuilder(pk)
	for _, s := range signatures {
		signature, err := account.ParseSerializedSignature(s)
		if nil != err {
			return err
		}
		if err := b.AddSigned(signature); nil != err {
			return err
		}
	}

	sig, err := b.Build()
	if nil != err {
		return err
	}

	return printJson(m.w, multisigSignatureResult{
		Signature: sig.String(),
		Bitmap:    fmt.Sprintf("%016b", sig.Bitmap),
		Signers:   sig.Count(),
	})
}
