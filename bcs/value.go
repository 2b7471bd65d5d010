// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"math/big"

	"github.com/bitmark-inc/suicore/fault"
)

// Kind - the variant of a value or type
type Kind uint8

// the closed set of variants
const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindU256
	KindBool
	KindBytes
	KindOption
	KindVector
	KindAddress
	KindStruct
)

// MaximumZeroSizedItems - largest count accepted for a vector whose
// elements encode to no bytes
const MaximumZeroSizedItems = 65536

// Type - schema used to decode a value
//
// Element is used by KindOption and KindVector, Fields by KindStruct
type Type struct {
	Kind    Kind
	Element *Type
	Fields  []FieldType
}

// FieldType - one named field of a struct schema
type FieldType struct {
	Name string
	Type Type
}

// simple types
var (
	TypeU8      = Type{Kind: KindU8}
	TypeU16     = Type{Kind: KindU16}
	TypeU32     = Type{Kind: KindU32}
	TypeU64     = Type{Kind: KindU64}
	TypeU128    = Type{Kind: KindU128}
	TypeU256    = Type{Kind: KindU256}
	TypeBool    = Type{Kind: KindBool}
	TypeBytes   = Type{Kind: KindBytes}
	TypeAddress = Type{Kind: KindAddress}
)

// OptionOf - schema for Option<t>
func OptionOf(t Type) Type {
	return Type{Kind: KindOption, Element: &t}
}

// VectorOf - schema for Vector<t>
func VectorOf(t Type) Type {
	return Type{Kind: KindVector, Element: &t}
}

// StructOf - schema for a struct, fields encoded in the order given
func StructOf(fields ...FieldType) Type {
	return Type{Kind: KindStruct, Fields: fields}
}

// Value - one of the typed value variants below
type Value interface {
	Kind() Kind
	Encode(w *Writer) error
	isValue()
}

// U8 - unsigned 8 bit
type U8 uint8

// U16 - unsigned 16 bit
type U16 uint16

// U32 - unsigned 32 bit
type U32 uint32

// U64 - unsigned 64 bit
type U64 uint64

// U128 - unsigned 128 bit
type U128 struct{ Int *big.Int }

// U256 - unsigned 256 bit
type U256 struct{ Int *big.Int }

// Bool - boolean
type Bool bool

// Bytes - varint length prefixed byte string
type Bytes []byte

// Option - Value is nil when absent
type Option struct {
	Of    Type
	Value Value
}

// Vector - homogeneous sequence
type Vector struct {
	Of    Type
	Items []Value
}

// Field - a named struct member
type Field struct {
	Name  string
	Value Value
}

// Struct - fields in declaration order; the order is the encoding order
type Struct struct {
	Fields []Field
}

func (U8) Kind() Kind      { return KindU8 }
func (U16) Kind() Kind     { return KindU16 }
func (U32) Kind() Kind     { return KindU32 }
func (U64) Kind() Kind     { return KindU64 }
func (U128) Kind() Kind    { return KindU128 }
func (U256) Kind() Kind    { return KindU256 }
func (Bool) Kind() Kind    { return KindBool }
func (Bytes) Kind() Kind   { return KindBytes }
func (Option) Kind() Kind  { return KindOption }
func (Vector) Kind() Kind  { return KindVector }
func (Address) Kind() Kind { return KindAddress }
func (Struct) Kind() Kind  { return KindStruct }

func (U8) isValue()      {}
func (U16) isValue()     {}
func (U32) isValue()     {}
func (U64) isValue()     {}
func (U128) isValue()    {}
func (U256) isValue()    {}
func (Bool) isValue()    {}
func (Bytes) isValue()   {}
func (Option) isValue()  {}
func (Vector) isValue()  {}
func (Address) isValue() {}
func (Struct) isValue()  {}

func (v U8) Encode(w *Writer) error   { w.WriteU8(uint8(v)); return nil }
func (v U16) Encode(w *Writer) error  { w.WriteU16(uint16(v)); return nil }
func (v U32) Encode(w *Writer) error  { w.WriteU32(uint32(v)); return nil }
func (v U64) Encode(w *Writer) error  { w.WriteU64(uint64(v)); return nil }
func (v U128) Encode(w *Writer) error { return w.WriteU128(v.Int) }
func (v U256) Encode(w *Writer) error { return w.WriteU256(v.Int) }
func (v Bool) Encode(w *Writer) error { w.WriteBool(bool(v)); return nil }

func (v Bytes) Encode(w *Writer) error {
	w.WriteByteVector(v)
	return nil
}

func (a Address) Encode(w *Writer) error {
	w.WriteAddress(a)
	return nil
}

func (v Option) Encode(w *Writer) error {
	if nil == v.Value {
		w.WriteOptionTag(false)
		return nil
	}
	if v.Value.Kind() != v.Of.Kind {
		return fault.ErrInvalidDiscriminant
	}
	w.WriteOptionTag(true)
	return v.Value.Encode(w)
}

func (v Vector) Encode(w *Writer) error {
	w.WriteVectorLength(len(v.Items))
	for _, item := range v.Items {
		if item.Kind() != v.Of.Kind {
			return fault.ErrInvalidDiscriminant
		}
		if err := item.Encode(w); nil != err {
			return err
		}
	}
	return nil
}

func (v Struct) Encode(w *Writer) error {
	for _, f := range v.Fields {
		if err := f.Value.Encode(w); nil != err {
			return err
		}
	}
	return nil
}

// Get - the first field with the given name
func (v Struct) Get(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Encode - canonical bytes of a value
func Encode(v Value) ([]byte, error) {
	w := NewWriter()
	if err := v.Encode(w); nil != err {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode - decode exactly one value of type t from data
//
// trailing bytes are an error
func Decode(t Type, data []byte) (Value, error) {
	r := NewReader(data)
	v, err := DecodeFrom(r, t)
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return v, nil
}

// DecodeFrom - decode one value of type t from the reader
func DecodeFrom(r *Reader, t Type) (Value, error) {
	v, err := decodeValue(r, t)
	if nil != err {
		return nil, err
	}
	return v, nil
}

func decodeValue(r *Reader, t Type) (Value, error) {
	switch t.Kind {
	case KindU8:
		v, err := r.ReadU8()
		return U8(v), err

	case KindU16:
		v, err := r.ReadU16()
		return U16(v), err

	case KindU32:
		v, err := r.ReadU32()
		return U32(v), err

	case KindU64:
		v, err := r.ReadU64()
		return U64(v), err

	case KindU128:
		v, err := r.ReadU128()
		if nil != err {
			return nil, err
		}
		return U128{Int: v}, nil

	case KindU256:
		v, err := r.ReadU256()
		if nil != err {
			return nil, err
		}
		return U256{Int: v}, nil

	case KindBool:
		v, err := r.ReadBool()
		return Bool(v), err

	case KindBytes:
		v, err := r.ReadByteVector()
		if nil != err {
			return nil, err
		}
		return Bytes(v), nil

	case KindAddress:
		return r.ReadAddress()

	case KindOption:
		if nil == t.Element {
			return nil, fault.ErrInvalidDiscriminant
		}
		present, err := r.ReadOptionTag()
		if nil != err {
			return nil, err
		}
		if !present {
			return Option{Of: *t.Element}, nil
		}
		v, err := DecodeFrom(r, *t.Element)
		if nil != err {
			return nil, err
		}
		return Option{Of: *t.Element, Value: v}, nil

	case KindVector:
		if nil == t.Element {
			return nil, fault.ErrInvalidDiscriminant
		}
		n, err := r.ReadVectorLength()
		if nil != err {
			return nil, err
		}
		// every element takes at least one byte unless its encoding can
		// be empty, in which case the count alone is bounded
		if zeroSized(*t.Element) {
			if n > MaximumZeroSizedItems {
				return nil, fault.ErrTooManyItems
			}
		} else if n > r.Remaining() {
			return nil, fault.ErrTruncatedInput
		}
		capacity := n
		if capacity > r.Remaining() {
			capacity = r.Remaining()
		}
		items := make([]Value, 0, capacity)
		for i := 0; i < n; i += 1 {
			v, err := DecodeFrom(r, *t.Element)
			if nil != err {
				return nil, err
			}
			items = append(items, v)
		}
		return Vector{Of: *t.Element, Items: items}, nil

	case KindStruct:
		fields := make([]Field, 0, len(t.Fields))
		for _, f := range t.Fields {
			v, err := DecodeFrom(r, f.Type)
			if nil != err {
				return nil, err
			}
			fields = append(fields, Field{Name: f.Name, Value: v})
		}
		return Struct{Fields: fields}, nil

	default:
		return nil, fault.ErrInvalidDiscriminant
	}
}

// true when a value of the type encodes to no bytes at all
func zeroSized(t Type) bool {
	if KindStruct != t.Kind {
		return false
	}
	for _, f := range t.Fields {
		if !zeroSized(f.Type) {
			return false
		}
	}
	return true
}
