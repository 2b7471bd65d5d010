// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"

	"github.com/bitmark-inc/suicore/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsurePlainFileName - fail if the name has any directory part
func EnsurePlainFileName(name string) error {
	if "" == name {
		return fault.ErrNotPlainFileName
	}
	switch filepath.Dir(name) {
	case ".":
		if filepath.Base(name) != name {
			return fault.ErrNotPlainFileName
		}
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}
