// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"github.com/bitmark-inc/suicore/fault"
)

// default derivation paths, coin type 784
const (
	DefaultEd25519Path   = "m/44'/784'/0'/0'/0'"
	DefaultSecp256k1Path = "m/54'/784'/0'/0/0"
	DefaultSecp256r1Path = "m/74'/784'/0'/0/0"
)

const (
	hardenedOffset = hdkeychain.HardenedKeyStart
	coinType       = 784
	entropyBits    = 128
)

// purpose field of the path for each scheme
var purposes = map[Scheme]uint32{
	Ed25519:   44,
	Secp256k1: 54,
	Secp256r1: 74,
}

// NewMnemonic - a fresh 12 word phrase
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if nil != err {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// DefaultPath - the standard path for a scheme
func DefaultPath(scheme Scheme) (string, error) {
	switch scheme {
	case Ed25519:
		return DefaultEd25519Path, nil
	case Secp256k1:
		return DefaultSecp256k1Path, nil
	case Secp256r1:
		return DefaultSecp256r1Path, nil
	default:
		return "", fault.ErrUnsupportedScheme
	}
}

// FromMnemonic - derive a key from a BIP-39 phrase
//
// an empty path selects the scheme default
func FromMnemonic(scheme Scheme, phrase string, path string) (Signer, error) {
	if !scheme.IsSignable() {
		return nil, fault.ErrUnsupportedScheme
	}
	if "" == path {
		path, _ = DefaultPath(scheme)
	}
	indexes, err := ParsePath(scheme, path)
	if nil != err {
		return nil, err
	}

	seed, err := bip39.NewSeedWithErrorChecking(strings.TrimSpace(phrase), "")
	if nil != err {
		return nil, fault.ErrInvalidMnemonic
	}

	switch scheme {
	case Ed25519:
		k, err := slip10Ed25519(seed, indexes)
		if nil != err {
			return nil, err
		}
		return FromSecret(Ed25519, k.key)

	case Secp256k1:
		master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
		if nil != err {
			return nil, err
		}
		k := master
		for _, index := range indexes {
			k, err = k.Derive(index)
			if nil != err {
				return nil, err
			}
		}
		var priv *btcec.PrivateKey
		priv, err = k.ECPrivKey()
		if nil != err {
			return nil, err
		}
		return FromSecret(Secp256k1, priv.Serialize())

	default:
		k, err := slip10Nist256p1(seed, indexes)
		if nil != err {
			return nil, err
		}
		return FromSecret(Secp256r1, k.key)
	}
}

// ParsePath - split "m/a'/b'/..." into child indexes
//
// ed25519 paths are m/44'/784'/x'/x'/x', the EC schemes use
// m/54'/784'/x'/x/x and m/74'/784'/x'/x/x
func ParsePath(scheme Scheme, path string) ([]uint32, error) {
	purpose, ok := purposes[scheme]
	if !ok {
		return nil, fault.ErrUnsupportedScheme
	}

	segments := strings.Split(strings.TrimSpace(path), "/")
	if 6 != len(segments) || "m" != segments[0] {
		return nil, fault.ErrInvalidDerivationPath
	}

	indexes := make([]uint32, 0, 5)
	for i, segment := range segments[1:] {
		hardened := strings.HasSuffix(segment, "'")
		if hardened {
			segment = segment[:len(segment)-1]
		}
		n, err := strconv.ParseUint(segment, 10, 31)
		if nil != err {
			return nil, fault.ErrInvalidDerivationPath
		}

		mustHarden := i < 3 || Ed25519 == scheme
		if hardened != mustHarden {
			return nil, fault.ErrInvalidDerivationPath
		}

		index := uint32(n)
		if hardened {
			index += hardenedOffset
		}
		indexes = append(indexes, index)
	}

	if indexes[0] != purpose+hardenedOffset || indexes[1] != coinType+hardenedOffset {
		return nil, fault.ErrInvalidDerivationPath
	}
	return indexes, nil
}
