// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/bitmark-inc/suicore/bcs"
)

// ArgumentTag - binary discriminant of an argument
type ArgumentTag uint64

// enumerate the possible arguments
const (
	GasCoinTag      ArgumentTag = iota
	InputTag        ArgumentTag = iota
	ResultTag       ArgumentTag = iota
	NestedResultTag ArgumentTag = iota

	// this item must be last
	InvalidArgumentTag ArgumentTag = iota
)

// Argument - a reference usable as a command parameter
//
// only a Builder (or the unpacker) can create Input, Result and
// NestedResult values, so every reference names a slot that existed
// when it was created
type Argument interface {
	Tag() ArgumentTag
	String() string
	pack(w *bcs.Writer)
}

// GasCoin - the coin paying for gas
type GasCoin struct{}

// Input - a slot in the input list
type Input struct {
	index uint16
}

// Result - the whole output of an earlier command
type Result struct {
	index uint16
}

// NestedResult - one output of an earlier command returning several values
type NestedResult struct {
	index  uint16
	result uint16
}

func (GasCoin) Tag() ArgumentTag      { return GasCoinTag }
func (Input) Tag() ArgumentTag        { return InputTag }
func (Result) Tag() ArgumentTag       { return ResultTag }
func (NestedResult) Tag() ArgumentTag { return NestedResultTag }

func (GasCoin) String() string { return "GasCoin" }

func (a Input) String() string {
	return fmt.Sprintf("Input(%d)", a.index)
}

func (a Result) String() string {
	return fmt.Sprintf("Result(%d)", a.index)
}

func (a NestedResult) String() string {
	return fmt.Sprintf("NestedResult(%d, %d)", a.index, a.result)
}

// MarshalText - arguments appear in JSON by their printed form
func (a GasCoin) MarshalText() ([]byte, error)      { return []byte(a.String()), nil }
func (a Input) MarshalText() ([]byte, error)        { return []byte(a.String()), nil }
func (a Result) MarshalText() ([]byte, error)       { return []byte(a.String()), nil }
func (a NestedResult) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Index - position in the input list
func (a Input) Index() uint16 {
	return a.index
}

// Index - position of the command in the command list
func (a Result) Index() uint16 {
	return a.index
}

// Nested - the i'th value returned by this command
func (a Result) Nested(i uint16) NestedResult {
	return NestedResult{
		index:  a.index,
		result: i,
	}
}

// Index - position of the command in the command list
func (a NestedResult) Index() uint16 {
	return a.index
}

// ResultIndex - which of the command's return values
func (a NestedResult) ResultIndex() uint16 {
	return a.result
}

func (GasCoin) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(GasCoinTag))
}

func (a Input) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(InputTag))
	w.WriteU16(a.index)
}

func (a Result) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(ResultTag))
	w.WriteU16(a.index)
}

func (a NestedResult) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(NestedResultTag))
	w.WriteU16(a.index)
	w.WriteU16(a.result)
}
