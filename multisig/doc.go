// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multisig - threshold signatures over a set of member keys
//
// A PublicKey lists up to ten weighted member keys and a threshold.
// A Signature carries a bitmap of the members that signed and their
// individual signatures in bitmap order.  Verification walks the
// bitmap from the lowest bit and accepts when the weight of valid
// member signatures reaches the threshold.
package multisig
