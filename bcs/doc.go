// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bcs - canonical binary encoding of values
//
// fixed width integers are little-endian, lengths and counts are
// canonical varints, options carry a single 0/1 tag byte and addresses
// are 32 raw bytes
//
// decoding is strict: any read past the end of the buffer, any tag
// outside its legal set and any non-minimal varint is an error
package bcs
