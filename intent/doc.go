// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package intent - domain separation for signed messages
//
// Every message is prefixed with a three byte intent: scope, version
// and application id.  The same bytes signed under two different
// scopes produce unrelated digests, so a signature over a personal
// message can never be replayed as a transaction signature.
package intent
