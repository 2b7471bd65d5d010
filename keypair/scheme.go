// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/bitmark-inc/suicore/fault"
)

// Scheme - signature scheme flag byte
type Scheme byte

// enumeration of signature schemes, values are fixed by the chain
const (
	Ed25519   Scheme = 0x00
	Secp256k1 Scheme = 0x01
	Secp256r1 Scheme = 0x02
	MultiSig  Scheme = 0x03
	ZkLogin   Scheme = 0x05
	Passkey   Scheme = 0x06
)

// key and signature sizes
const (
	Ed25519PublicKeySize = 32
	ECPublicKeySize      = 33
	SignatureSize        = 64
	SecretSize           = 32
)

// PublicKeySize - raw public key length for a single key scheme
func PublicKeySize(scheme Scheme) (int, error) {
	switch scheme {
	case Ed25519:
		return Ed25519PublicKeySize, nil
	case Secp256k1, Secp256r1:
		return ECPublicKeySize, nil
	default:
		return 0, fault.ErrUnsupportedScheme
	}
}

// IsSignable - true for the schemes a single private key can sign with
func (scheme Scheme) IsSignable() bool {
	switch scheme {
	case Ed25519, Secp256k1, Secp256r1:
		return true
	default:
		return false
	}
}

// String - scheme name
func (scheme Scheme) String() string {
	switch scheme {
	case Ed25519:
		return "ED25519"
	case Secp256k1:
		return "Secp256k1"
	case Secp256r1:
		return "Secp256r1"
	case MultiSig:
		return "MultiSig"
	case ZkLogin:
		return "ZkLogin"
	case Passkey:
		return "Passkey"
	default:
		return "Unknown"
	}
}

// SchemeFromString - parse a scheme name, case sensitive as printed by String
func SchemeFromString(s string) (Scheme, error) {
	switch s {
	case "ED25519", "ed25519":
		return Ed25519, nil
	case "Secp256k1", "secp256k1":
		return Secp256k1, nil
	case "Secp256r1", "secp256r1":
		return Secp256r1, nil
	default:
		return 0, fault.ErrUnsupportedScheme
	}
}
