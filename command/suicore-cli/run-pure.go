// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/bcs"
)

type pureResult struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Encoded string `json:"encoded"`
	Length  int    `json:"length"`
}

func runPure(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind := strings.ToLower(strings.TrimSpace(c.String("type")))
	if "" == kind {
		return ErrRequiredType
	}
	value := strings.TrimSpace(c.String("value"))
	if "" == value && "string" != kind {
		return ErrRequiredValue
	}

	b, err := pureBytes(kind, value)
	if nil != err {
		return err
	}

	if m.verbose {
		m.log.Debugf("pure: %s value: %q", kind, value)
	}

	return printJson(m.w, pureResult{
		Type:    kind,
		Value:   value,
		Encoded: hex.EncodeToString(b),
		Length:  len(b),
	})
}

func pureBytes(kind string, value string) ([]byte, error) {
	switch kind {
	case "u8", "u16", "u32", "u64":
		bits, _ := strconv.Atoi(kind[1:])
		n, err := strconv.ParseUint(value, 10, bits)
		if nil != err {
			return nil, ErrInvalidNumber
		}
		switch bits {
		case 8:
			return bcs.PureU8(uint8(n)), nil
		case 16:
			return bcs.PureU16(uint16(n)), nil
		case 32:
			return bcs.PureU32(uint32(n)), nil
		default:
			return bcs.PureU64(n), nil
		}

	case "u256":
		n, err := uint256.FromDecimal(value)
		if nil != err {
			return nil, ErrInvalidNumber
		}
		return bcs.PureU256(n), nil

	case "bool":
		v, err := strconv.ParseBool(value)
		if nil != err {
			return nil, ErrInvalidValue
		}
		return bcs.PureBool(v), nil

	case "address":
		a, err := bcs.AddressFromString(value)
		if nil != err {
			return nil, err
		}
		return bcs.PureAddress(a), nil

	case "string":
		return bcs.PureString(value), nil

	default:
		return nil, ErrInvalidType
	}
}
