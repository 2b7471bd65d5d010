// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/keypair"
)

// member limits
const (
	MaximumMembers = 10
	DefaultWeight  = 1
)

// Member - one key of the set
type Member struct {
	PublicKey keypair.PublicKey
	Weight    uint8
}

// PublicKey - ordered member keys and a threshold
type PublicKey struct {
	members   []Member
	threshold uint16
}

// NewPublicKey - validate and freeze a member set
//
// a zero weight is replaced by DefaultWeight; members must be single
// key schemes and appear only once
func NewPublicKey(members []Member, threshold uint16) (*PublicKey, error) {
	if 0 == len(members) {
		return nil, fault.ErrTooFewMembers
	}
	if len(members) > MaximumMembers {
		return nil, fault.ErrTooManyMembers
	}

	frozen := make([]Member, 0, len(members))
	total := 0
	for i, m := range members {
		if nil == m.PublicKey {
			return nil, fault.ErrInvalidKeyLength
		}
		if !m.PublicKey.Scheme().IsSignable() {
			return nil, fault.ErrUnsupportedScheme
		}
		for _, previous := range members[:i] {
			if bytes.Equal(previous.PublicKey.SuiBytes(), m.PublicKey.SuiBytes()) {
				return nil, fault.ErrDuplicateMember
			}
		}
		if 0 == m.Weight {
			m.Weight = DefaultWeight
		}
		total += int(m.Weight)
		frozen = append(frozen, m)
	}

	if 0 == threshold || int(threshold) > total {
		return nil, fault.ErrInvalidThreshold
	}

	return &PublicKey{
		members:   frozen,
		threshold: threshold,
	}, nil
}

// Members - copy of the member list
func (pk *PublicKey) Members() []Member {
	return append([]Member{}, pk.members...)
}

// Threshold - weight needed to accept
func (pk *PublicKey) Threshold() uint16 {
	return pk.threshold
}

// TotalWeight - sum of member weights
func (pk *PublicKey) TotalWeight() int {
	total := 0
	for _, m := range pk.members {
		total += int(m.Weight)
	}
	return total
}

// Index - position of a member key, -1 if absent
func (pk *PublicKey) Index(key keypair.PublicKey) int {
	b := key.SuiBytes()
	for i, m := range pk.members {
		if bytes.Equal(b, m.PublicKey.SuiBytes()) {
			return i
		}
	}
	return -1
}

// IsWeighted - true when any member carries a weight other than one
func (pk *PublicKey) IsWeighted() bool {
	for _, m := range pk.members {
		if DefaultWeight != m.Weight {
			return true
		}
	}
	return false
}

// Bytes - flag, count, threshold byte then each length prefixed member
// key
//
// only unit weight sets have this form; a weighted set returns
// ErrInvalidWeight and must use WeightedBytes
func (pk *PublicKey) Bytes() ([]byte, error) {
	if pk.IsWeighted() {
		return nil, fault.ErrInvalidWeight
	}
	buffer := []byte{byte(keypair.MultiSig), byte(len(pk.members)), byte(pk.threshold)}
	for _, m := range pk.members {
		key := m.PublicKey.SuiBytes()
		buffer = append(buffer, byte(len(key)))
		buffer = append(buffer, key...)
	}
	return buffer, nil
}

// WeightedBytes - flag, count, threshold as u16 LE then each length
// prefixed member key followed by its weight
func (pk *PublicKey) WeightedBytes() []byte {
	buffer := []byte{byte(keypair.MultiSig), byte(len(pk.members)), 0, 0}
	binary.LittleEndian.PutUint16(buffer[2:], pk.threshold)

	for _, m := range pk.members {
		key := m.PublicKey.SuiBytes()
		buffer = append(buffer, byte(len(key)))
		buffer = append(buffer, key...)
		buffer = append(buffer, m.Weight)
	}
	return buffer
}

// Encoded - Bytes for a unit weight set, otherwise WeightedBytes
func (pk *PublicKey) Encoded() []byte {
	if b, err := pk.Bytes(); nil == err {
		return b
	}
	return pk.WeightedBytes()
}

// Address - blake2b-256 of the encoded key set
func (pk *PublicKey) Address() bcs.Address {
	return account.AddressFromSuiBytes(pk.Encoded())
}

// String - base64 of Encoded
func (pk *PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(pk.Encoded())
}

// ParsePublicKey - decode Bytes
func ParsePublicKey(buffer []byte) (*PublicKey, error) {
	count, err := parseHeader(buffer, 3)
	if nil != err {
		return nil, err
	}
	threshold := uint16(buffer[2])

	members, err := parseMembers(buffer[3:], count, false)
	if nil != err {
		return nil, err
	}
	return NewPublicKey(members, threshold)
}

// ParseWeightedPublicKey - decode WeightedBytes
func ParseWeightedPublicKey(buffer []byte) (*PublicKey, error) {
	count, err := parseHeader(buffer, 4)
	if nil != err {
		return nil, err
	}
	threshold := binary.LittleEndian.Uint16(buffer[2:4])

	members, err := parseMembers(buffer[4:], count, true)
	if nil != err {
		return nil, err
	}
	return NewPublicKey(members, threshold)
}

func parseHeader(buffer []byte, size int) (int, error) {
	if len(buffer) < size {
		return 0, fault.ErrTruncatedInput
	}
	if keypair.MultiSig != keypair.Scheme(buffer[0]) {
		return 0, fault.ErrUnsupportedScheme
	}
	count := int(buffer[1])
	if 0 == count {
		return 0, fault.ErrTooFewMembers
	}
	if count > MaximumMembers {
		return 0, fault.ErrTooManyMembers
	}
	return count, nil
}

func parseMembers(buffer []byte, count int, weighted bool) ([]Member, error) {
	trailer := 0
	if weighted {
		trailer = 1
	}

	n := 0
	members := make([]Member, 0, count)
	for i := 0; i < count; i += 1 {
		if n >= len(buffer) {
			return nil, fault.ErrTruncatedInput
		}
		length := int(buffer[n])
		n += 1
		if n+length+trailer > len(buffer) {
			return nil, fault.ErrTruncatedInput
		}
		key, err := keypair.PublicKeyFromSuiBytes(buffer[n : n+length])
		if nil != err {
			return nil, err
		}
		n += length

		weight := uint8(DefaultWeight)
		if weighted {
			weight = buffer[n]
			n += 1
			if 0 == weight {
				return nil, fault.ErrInvalidWeight
			}
		}
		members = append(members, Member{PublicKey: key, Weight: weight})
	}
	if n != len(buffer) {
		return nil, fault.ErrTrailingBytes
	}
	return members, nil
}

// ParsePublicKeyBase64 - decode the String form
//
// the unweighted form is tried first; a weighted encoding never parses
// as one since its second threshold byte is not a valid key length
func ParsePublicKeyBase64(s string) (*PublicKey, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return nil, fault.ErrTruncatedInput
	}
	pk, err := ParsePublicKey(b)
	if nil == err {
		return pk, nil
	}
	if weighted, werr := ParseWeightedPublicKey(b); nil == werr {
		return weighted, nil
	}
	return nil, err
}
