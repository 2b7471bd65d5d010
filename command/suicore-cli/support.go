// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/keypair"
	"github.com/bitmark-inc/suicore/multisig"
	"github.com/bitmark-inc/suicore/transaction"
)

// scheme from a flag, falling back to the configured one
func schemeFromFlag(m *metadata, name string) (keypair.Scheme, error) {
	if "" == name {
		name = m.config.Scheme
	}
	return keypair.SchemeFromString(name)
}

// derivation path from a flag, then the configuration, then the scheme default
func pathFromFlag(m *metadata, scheme keypair.Scheme, path string) (string, error) {
	if "" != path {
		return path, nil
	}
	if "" != m.config.DerivationPath {
		configured, err := keypair.SchemeFromString(m.config.Scheme)
		if nil == err && configured == scheme {
			return m.config.DerivationPath, nil
		}
	}
	return keypair.DefaultPath(scheme)
}

// private key is required
func checkPrivateKey(s string) (keypair.Signer, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrRequiredPrivateKey
	}
	return keypair.DecodePrivateKey(s)
}

// transaction bytes are required and must be base64
func checkTransaction(s string) (transaction.Packed, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrRequiredTransaction
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return nil, ErrInvalidTransaction
	}
	return transaction.Packed(b), nil
}

// object reference in the form ID:VERSION:DIGEST
func parseObjectRef(s string) (transaction.ObjectRef, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if 3 != len(parts) {
		return transaction.ObjectRef{}, ErrInvalidObjectRef
	}

	id, err := bcs.AddressFromString(parts[0])
	if nil != err {
		return transaction.ObjectRef{}, err
	}
	version, err := strconv.ParseUint(parts[1], 10, 64)
	if nil != err {
		return transaction.ObjectRef{}, ErrInvalidNumber
	}
	digest, err := transaction.ObjectDigestFromString(parts[2])
	if nil != err {
		return transaction.ObjectRef{}, err
	}

	return transaction.ObjectRef{
		ObjectID: id,
		Version:  version,
		Digest:   digest,
	}, nil
}

// member in the form KEY[:WEIGHT], base64 never contains a colon
func parseMember(s string) (multisig.Member, error) {
	s = strings.TrimSpace(s)
	weight := uint64(multisig.DefaultWeight)
	if n := strings.LastIndex(s, ":"); n >= 0 {
		w, err := strconv.ParseUint(s[n+1:], 10, 8)
		if nil != err || 0 == w {
			return multisig.Member{}, ErrWeightOutOfRange
		}
		weight = w
		s = s[:n]
	}

	pub, err := keypair.PublicKeyFromBase64(s)
	if nil != err {
		return multisig.Member{}, err
	}
	return multisig.Member{
		PublicKey: pub,
		Weight:    uint8(weight),
	}, nil
}
