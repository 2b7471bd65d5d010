// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - programmable transaction command graph
//
// A Builder collects inputs and commands.  Adding an input yields an
// Input reference and adding a command yields a Result reference; both
// can be passed as arguments to later commands.  Results can only
// come from the Builder, so a command can only refer to commands added
// before it.
//
// Build freezes the state into Data, whose Pack method produces the
// canonical bytes that are signed and submitted.
package transaction
