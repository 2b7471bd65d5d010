// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/ecdh"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/suicore/fault"
)

// SLIP-0010 curve seeds
const (
	ed25519Curve   = "ed25519 seed"
	nist256p1Curve = "Nist256p1 seed"
)

type slip10Key struct {
	key       []byte
	chainCode []byte
}

func hmacSHA512(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}

// ed25519 only has hardened children
func slip10Ed25519(seed []byte, path []uint32) (*slip10Key, error) {
	I := hmacSHA512([]byte(ed25519Curve), seed)
	k := &slip10Key{key: I[:32], chainCode: I[32:]}

	for _, index := range path {
		if index < hardenedOffset {
			return nil, fault.ErrInvalidDerivationPath
		}
		I := hmacSHA512(k.chainCode, []byte{0x00}, k.key, ser32(index))
		k = &slip10Key{key: I[:32], chainCode: I[32:]}
	}
	return k, nil
}

// a key is usable if 0 < IL < n
func nist256p1Valid(il []byte) bool {
	v := new(big.Int).SetBytes(il)
	return 0 != v.Sign() && v.Cmp(p256Order) < 0
}

func slip10Nist256p1(seed []byte, path []uint32) (*slip10Key, error) {
	I := hmacSHA512([]byte(nist256p1Curve), seed)
	for !nist256p1Valid(I[:32]) {
		I = hmacSHA512([]byte(nist256p1Curve), I)
	}
	k := &slip10Key{key: I[:32], chainCode: I[32:]}

	for _, index := range path {
		var data []byte
		if index >= hardenedOffset {
			data = append([]byte{0x00}, k.key...)
		} else {
			pub, err := compressedP256(k.key)
			if nil != err {
				return nil, err
			}
			data = pub
		}

		I := hmacSHA512(k.chainCode, data, ser32(index))
		for {
			child := new(big.Int).SetBytes(I[:32])
			if child.Cmp(p256Order) < 0 {
				child.Add(child, new(big.Int).SetBytes(k.key))
				child.Mod(child, p256Order)
				if 0 != child.Sign() {
					key := make([]byte, 32)
					child.FillBytes(key)
					k = &slip10Key{key: key, chainCode: I[32:]}
					break
				}
			}
			I = hmacSHA512(k.chainCode, []byte{0x01}, I[32:], ser32(index))
		}
	}
	return k, nil
}

// compressed public point of a P-256 scalar
func compressedP256(secret []byte) ([]byte, error) {
	k, err := ecdh.P256().NewPrivateKey(secret)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	point := k.PublicKey().Bytes()
	compressed := make([]byte, 0, ECPublicKeySize)
	compressed = append(compressed, 0x02|point[64]&0x01)
	return append(compressed, point[1:33]...), nil
}
