// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/util"
)

type varintResult struct {
	Value   uint64 `json:"value"`
	Encoded string `json:"encoded"`
	Length  int    `json:"length"`
}

func runVarint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	encode := strings.TrimSpace(c.String("encode"))
	decode := strings.TrimSpace(c.String("decode"))

	switch {
	case "" != encode && "" != decode:
		return ErrConflictingOptions

	case "" != encode:
		value, err := strconv.ParseUint(encode, 10, 64)
		if nil != err {
			return ErrInvalidNumber
		}
		if value > util.MaximumVarint {
			return fault.ErrVarintOverflow
		}
		b := util.ToVarint64(value)
		return printJson(m.w, varintResult{
			Value:   value,
			Encoded: hex.EncodeToString(b),
			Length:  len(b),
		})

	case "" != decode:
		b, err := hex.DecodeString(decode)
		if nil != err {
			return ErrInvalidHex
		}
		value, n, err := util.FromVarint64(b)
		if nil != err {
			return err
		}
		if n != len(b) {
			return fault.ErrTrailingBytes
		}
		return printJson(m.w, varintResult{
			Value:   value,
			Encoded: hex.EncodeToString(b),
			Length:  n,
		})

	default:
		return ErrRequiredValue
	}
}
