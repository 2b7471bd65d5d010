// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/keypair"
)

type keyDetail struct {
	Mnemonic   string      `json:"mnemonic,omitempty"`
	Path       string      `json:"path,omitempty"`
	Scheme     string      `json:"scheme"`
	PrivateKey string      `json:"private_key,omitempty"`
	PublicKey  string      `json:"public_key"`
	Address    bcs.Address `json:"address"`
}

func describeKey(pub keypair.PublicKey) keyDetail {
	return keyDetail{
		Scheme:    pub.Scheme().String(),
		PublicKey: base64.StdEncoding.EncodeToString(pub.SuiBytes()),
		Address:   account.AddressOf(pub),
	}
}

func describeSigner(signer keypair.Signer) (keyDetail, error) {
	detail := describeKey(signer.PublicKey())
	privateKey, err := keypair.EncodePrivateKey(signer)
	if nil != err {
		return detail, err
	}
	detail.PrivateKey = privateKey
	return detail, nil
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	scheme, err := schemeFromFlag(m, c.String("scheme"))
	if nil != err {
		return err
	}
	path, err := pathFromFlag(m, scheme, c.String("path"))
	if nil != err {
		return err
	}

	phrase, err := keypair.NewMnemonic()
	if nil != err {
		return err
	}
	signer, err := keypair.FromMnemonic(scheme, phrase, path)
	if nil != err {
		return err
	}

	detail, err := describeSigner(signer)
	if nil != err {
		return err
	}
	detail.Mnemonic = phrase
	detail.Path = path

	if m.verbose {
		fmt.Fprintf(m.e, "scheme: %s  path: %s\n", scheme, path)
	}
	m.log.Infof("generated: %s key: %s", scheme, detail.Address)

	return printJson(m.w, detail)
}
