// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/bitmark-inc/suicore/fault"
)

// PrivateKeyPrefix - bech32 human readable part of a private key
const PrivateKeyPrefix = "suiprivkey"

// EncodePrivateKey - bech32 text of flag || secret
func EncodePrivateKey(signer Signer) (string, error) {
	data := append([]byte{byte(signer.Scheme())}, signer.Secret()...)
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if nil != err {
		return "", err
	}
	return bech32.Encode(PrivateKeyPrefix, converted)
}

// DecodePrivateKey - parse the bech32 text back into a signer
func DecodePrivateKey(s string) (Signer, error) {
	hrp, data, err := bech32.Decode(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	if PrivateKeyPrefix != hrp {
		return nil, fault.ErrPrivateKeyPrefix
	}

	b, err := bech32.ConvertBits(data, 5, 8, false)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	if 1+SecretSize != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}

	scheme := Scheme(b[0])
	if !scheme.IsSignable() {
		return nil, fault.ErrUnsupportedScheme
	}
	return FromSecret(scheme, b[1:])
}
