// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors are grouped into classes.  VerificationError is reserved for
// a well-formed signature that did not verify, every other class
// signals that the input itself was malformed.
package fault
