// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"bytes"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/fault"
)

// Builder - collect member signatures in any order
type Builder struct {
	pk         *PublicKey
	signatures map[int][]byte
}

// NewBuilder - start combining signatures for the key set
func NewBuilder(pk *PublicKey) *Builder {
	return &Builder{
		pk:         pk,
		signatures: make(map[int][]byte),
	}
}

// Add - record the signature of the member at index
//
// the key embedded in the serialized signature must be that member's
func (b *Builder) Add(index int, signature account.SerializedSignature) error {
	if index < 0 || index >= len(b.pk.members) {
		return fault.ErrBitmapOutOfRange
	}
	sig, err := account.SerializedSignatureFromBytes(signature)
	if nil != err {
		return err
	}

	member := b.pk.members[index].PublicKey
	if member.Scheme() != sig.Scheme() || !bytes.Equal(member.Bytes(), sig.PublicKeyBytes()) {
		return fault.ErrMemberKeyMismatch
	}
	if _, ok := b.signatures[index]; ok {
		return fault.ErrDuplicateSignature
	}

	b.signatures[index] = append([]byte{}, sig.Signature()...)
	return nil
}

// AddSigned - find the member from the embedded key then Add
func (b *Builder) AddSigned(signature account.SerializedSignature) error {
	sig, err := account.SerializedSignatureFromBytes(signature)
	if nil != err {
		return err
	}
	key, err := sig.PublicKey()
	if nil != err {
		return err
	}
	index := b.pk.Index(key)
	if index < 0 {
		return fault.ErrMemberKeyMismatch
	}
	return b.Add(index, sig)
}

// Build - signatures ordered by member index
func (b *Builder) Build() (*Signature, error) {
	if 0 == len(b.signatures) {
		return nil, fault.ErrEmptyArguments
	}

	s := &Signature{}
	for i := range b.pk.members {
		sig, ok := b.signatures[i]
		if !ok {
			continue
		}
		s.Bitmap |= 1 << uint(i)
		s.Signatures = append(s.Signatures, sig)
	}
	return s, nil
}
