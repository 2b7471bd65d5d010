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

// Writer - append-only canonical encoder
type Writer struct {
	buffer []byte
}

// NewWriter - empty writer
func NewWriter() *Writer {
	return &Writer{
		buffer: make([]byte, 0, 256),
	}
}

// Bytes - the encoded data
func (w *Writer) Bytes() []byte {
	return w.buffer
}

// Len - number of bytes written
func (w *Writer) Len() int {
	return len(w.buffer)
}

// WriteBytes - raw bytes, no length prefix
func (w *Writer) WriteBytes(b []byte) {
	w.buffer = append(w.buffer, b...)
}

// WriteU8 - one byte
func (w *Writer) WriteU8(v uint8) {
	w.buffer = append(w.buffer, v)
}

// WriteU16 - little-endian
func (w *Writer) WriteU16(v uint16) {
	w.writeLittleEndian(uint64(v), 2)
}

// WriteU32 - little-endian
func (w *Writer) WriteU32(v uint32) {
	w.writeLittleEndian(uint64(v), 4)
}

// WriteU64 - little-endian
func (w *Writer) WriteU64(v uint64) {
	w.writeLittleEndian(v, 8)
}

// WriteU128 - 16 bytes little-endian, value must fit
func (w *Writer) WriteU128(v *big.Int) error {
	return w.writeBig(v, 16)
}

// WriteU256 - 32 bytes little-endian, value must fit
func (w *Writer) WriteU256(v *big.Int) error {
	return w.writeBig(v, 32)
}

// WriteBool - 0 or 1
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteVarint - canonical ULEB128
func (w *Writer) WriteVarint(v uint64) {
	w.buffer = append(w.buffer, util.ToVarint64(v)...)
}

// WriteVectorLength - element count prefix
func (w *Writer) WriteVectorLength(n int) {
	w.WriteVarint(uint64(n))
}

// WriteByteVector - varint length then bytes
func (w *Writer) WriteByteVector(b []byte) {
	w.WriteVectorLength(len(b))
	w.WriteBytes(b)
}

// WriteString - UTF-8 as a byte vector
func (w *Writer) WriteString(s string) {
	w.WriteByteVector([]byte(s))
}

// WriteAddress - 32 raw bytes
func (w *Writer) WriteAddress(a Address) {
	w.WriteBytes(a[:])
}

// WriteOptionTag - 1 if a value follows
func (w *Writer) WriteOptionTag(present bool) {
	w.WriteBool(present)
}

func (w *Writer) writeLittleEndian(v uint64, n int) {
	for i := 0; i < n; i += 1 {
		w.buffer = append(w.buffer, byte(v))
		v >>= 8
	}
}

func (w *Writer) writeBig(v *big.Int, n int) error {
	if nil == v || v.Sign() < 0 || v.BitLen() > 8*n {
		return fault.ErrValueOutOfRange
	}
	be := v.Bytes()
	for i := len(be) - 1; i >= 0; i -= 1 {
		w.buffer = append(w.buffer, be[i])
	}
	for i := len(be); i < n; i += 1 {
		w.buffer = append(w.buffer, 0)
	}
	return nil
}
