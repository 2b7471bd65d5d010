// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/util"
)

func TestEnsureAbsolute(t *testing.T) {
	base, _ := filepath.Abs("base")

	assert.Equal(t, filepath.Join(base, "log"), util.EnsureAbsolute(base, "log"), "relative")
	assert.Equal(t, filepath.Join(base, "log"), util.EnsureAbsolute(base, "./x/../log"), "cleaned")

	abs, _ := filepath.Abs("elsewhere")
	assert.Equal(t, abs, util.EnsureAbsolute(base, abs), "already absolute")
}

func TestEnsurePlainFileName(t *testing.T) {
	assert.Nil(t, util.EnsurePlainFileName("suicore.log"), "plain")

	for _, name := range []string{"", "log/suicore.log", "../suicore.log", "/tmp/x.log"} {
		assert.Equal(t, fault.ErrNotPlainFileName, util.EnsurePlainFileName(name), "name: %q", name)
	}
}

func TestFormatBytes(t *testing.T) {
	data := make([]byte, 18)
	for i := range data {
		data[i] = byte(i)
	}
	expected := "tx: 18 bytes\n" +
		"0000  00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n" +
		"0010  10 11"
	assert.Equal(t, expected, util.FormatBytes("tx", data), "two lines")
	assert.Equal(t, "empty: 0 bytes", util.FormatBytes("empty", nil), "empty")
}
