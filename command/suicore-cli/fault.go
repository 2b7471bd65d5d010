// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/suicore/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrConflictingOptions  = fault.InvalidError("only one of the alternative options may be given")
	ErrInvalidHex          = fault.InvalidError("invalid hex")
	ErrInvalidNumber       = fault.InvalidError("invalid number")
	ErrInvalidObjectRef    = fault.InvalidError("object reference must be ID:VERSION:DIGEST")
	ErrInvalidTransaction  = fault.InvalidError("transaction must be base64")
	ErrInvalidType         = fault.InvalidError("type must be one of u8 u16 u32 u64 u256 bool address string")
	ErrInvalidValue        = fault.InvalidError("invalid value")
	ErrRequiredGas         = fault.InvalidError("gas coin is required")
	ErrRequiredKey         = fault.InvalidError("a key is required")
	ErrRequiredMessage     = fault.InvalidError("message is required")
	ErrRequiredMultisig    = fault.InvalidError("multisig public key is required")
	ErrRequiredPayload     = fault.InvalidError("an amount or at least one object is required")
	ErrRequiredPrivateKey  = fault.InvalidError("private key is required")
	ErrRequiredRecipient   = fault.InvalidError("recipient is required")
	ErrRequiredSender      = fault.InvalidError("sender or private key is required")
	ErrRequiredSignature   = fault.InvalidError("signature is required")
	ErrRequiredTransaction = fault.InvalidError("transaction is required")
	ErrRequiredType        = fault.InvalidError("type is required")
	ErrRequiredValue       = fault.InvalidError("a value to encode or decode is required")
	ErrThresholdOutOfRange = fault.InvalidError("threshold out of range")
	ErrWeightOutOfRange    = fault.InvalidError("weight must be 1 to 255")
)
