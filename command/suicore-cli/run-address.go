// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/keypair"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey := strings.TrimSpace(c.String("private-key"))
	phrase := strings.TrimSpace(c.String("mnemonic"))
	publicKey := strings.TrimSpace(c.String("public-key"))

	given := 0
	for _, s := range []string{privateKey, phrase, publicKey} {
		if "" != s {
			given += 1
		}
	}
	switch given {
	case 0:
		return ErrRequiredKey
	case 1:
	default:
		return ErrConflictingOptions
	}

	var detail keyDetail
	switch {
	case "" != privateKey:
		signer, err := keypair.DecodePrivateKey(privateKey)
		if nil != err {
			return err
		}
		detail = describeKey(signer.PublicKey())

	case "" != phrase:
		scheme, err := schemeFromFlag(m, c.String("scheme"))
		if nil != err {
			return err
		}
		path, err := pathFromFlag(m, scheme, c.String("path"))
		if nil != err {
			return err
		}
		signer, err := keypair.FromMnemonic(scheme, phrase, path)
		if nil != err {
			return err
		}
		detail = describeKey(signer.PublicKey())
		detail.Path = path

	default:
		pub, err := keypair.PublicKeyFromBase64(publicKey)
		if nil != err {
			return err
		}
		detail = describeKey(pub)
	}

	return printJson(m.w, detail)
}
