// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/typetag"
)

type typeTagResult struct {
	Type    string `json:"type"`
	Encoded string `json:"encoded"`
}

func runTypeTag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := strings.TrimSpace(c.String("type"))
	if "" == text {
		return ErrRequiredType
	}

	tag, err := typetag.Parse(text)
	if nil != err {
		return err
	}

	return printJson(m.w, typeTagResult{
		Type:    tag.String(),
		Encoded: hex.EncodeToString(typetag.Bytes(tag)),
	})
}
