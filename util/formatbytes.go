// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// bytes shown on each dump line
const bytesPerLine = 16

// FormatBytes - labelled hex dump, one offset prefixed line per 16 bytes
//
//   transaction: 3 bytes
//   0000  00 00 01
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d bytes", name, len(data))
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "\n%04x  % x", offset, data[offset:end])
	}
	return b.String()
}
