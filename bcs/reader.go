// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"math/big"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/util"
)

// Reader - a cursor over an immutable buffer
//
// every read either consumes exactly the requested bytes or fails
// leaving the position unchanged
type Reader struct {
	buffer   []byte
	position int
}

// NewReader - start reading at the beginning of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Position - number of bytes consumed so far
func (r *Reader) Position() int {
	return r.position
}

// Remaining - number of bytes left
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.position
}

// Done - error unless the whole buffer was consumed
func (r *Reader) Done() error {
	if 0 != r.Remaining() {
		return fault.ErrTrailingBytes
	}
	return nil
}

// ReadBytes - the next n bytes; the result shares the backing buffer
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fault.ErrTruncatedInput
	}
	b := r.buffer[r.position : r.position+n]
	r.position += n
	return b, nil
}

// ReadU8 - one byte
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 - little-endian
func (r *Reader) ReadU16() (uint16, error) {
	v, err := r.readLittleEndian(2)
	return uint16(v), err
}

// ReadU32 - little-endian
func (r *Reader) ReadU32() (uint32, error) {
	v, err := r.readLittleEndian(4)
	return uint32(v), err
}

// ReadU64 - little-endian
func (r *Reader) ReadU64() (uint64, error) {
	return r.readLittleEndian(8)
}

// ReadU128 - 16 bytes little-endian
func (r *Reader) ReadU128() (*big.Int, error) {
	return r.readBig(16)
}

// ReadU256 - 32 bytes little-endian
func (r *Reader) ReadU256() (*big.Int, error) {
	return r.readBig(32)
}

// ReadBool - a single 0 or 1 byte
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadU8()
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.position -= 1
		return false, fault.ErrInvalidDiscriminant
	}
}

// ReadVarint - canonical ULEB128
func (r *Reader) ReadVarint() (uint64, error) {
	value, count, err := util.FromVarint64(r.buffer[r.position:])
	if nil != err {
		return 0, err
	}
	r.position += count
	return value, nil
}

// ReadVectorLength - the element count that prefixes a vector
func (r *Reader) ReadVectorLength() (int, error) {
	n, err := r.ReadVarint()
	if nil != err {
		return 0, err
	}
	return int(n), nil
}

// ReadByteVector - varint length then that many bytes
func (r *Reader) ReadByteVector() ([]byte, error) {
	start := r.position
	n, err := r.ReadVectorLength()
	if nil != err {
		return nil, err
	}
	b, err := r.ReadBytes(n)
	if nil != err {
		r.position = start
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// ReadString - a byte vector holding UTF-8
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadByteVector()
	if nil != err {
		return "", err
	}
	return string(b), nil
}

// ReadAddress - exactly 32 bytes
func (r *Reader) ReadAddress() (Address, error) {
	var a Address
	b, err := r.ReadBytes(AddressLength)
	if nil != err {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// ReadOptionTag - true if a value follows
func (r *Reader) ReadOptionTag() (bool, error) {
	return r.ReadBool()
}

// ReadDiscriminant - a varint enum tag that must be below limit
func (r *Reader) ReadDiscriminant(limit uint64) (uint64, error) {
	start := r.position
	tag, err := r.ReadVarint()
	if nil != err {
		return 0, err
	}
	if tag >= limit {
		r.position = start
		return 0, fault.ErrInvalidDiscriminant
	}
	return tag, nil
}

func (r *Reader) readLittleEndian(n int) (uint64, error) {
	b, err := r.ReadBytes(n)
	if nil != err {
		return 0, err
	}
	v := uint64(0)
	for i := n - 1; i >= 0; i -= 1 {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

func (r *Reader) readBig(n int) (*big.Int, error) {
	b, err := r.ReadBytes(n)
	if nil != err {
		return nil, err
	}
	be := make([]byte, n)
	for i := 0; i < n; i += 1 {
		be[n-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be), nil
}
