// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typetag

import (
	"strings"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
)

// TagType - binary discriminant of a type tag
type TagType uint64

// enumerate the possible type tags
const (
	VectorTagType    TagType = iota
	StructTagType    TagType = iota
	TypeParamTagType TagType = iota

	// this item must be last
	InvalidTagType TagType = iota
)

// nesting limit for both parsing and decoding
const maximumDepth = 64

// TypeTag - a Move type reference
type TypeTag interface {
	String() string
	Encode(w *bcs.Writer)
	isTypeTag()
}

// VectorTag - vector<Element>
type VectorTag struct {
	Element TypeTag
}

// StructTag - address::module::Name<TypeParams...>
type StructTag struct {
	Address    bcs.Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

// TypeParam - a placeholder or primitive name such as T or u64
type TypeParam struct {
	Name string
}

func (*VectorTag) isTypeTag() {}
func (*StructTag) isTypeTag() {}
func (*TypeParam) isTypeTag() {}

func (v *VectorTag) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (s *StructTag) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (p *TypeParam) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (v *VectorTag) String() string {
	return "vector<" + v.Element.String() + ">"
}

func (s *StructTag) String() string {
	var b strings.Builder
	b.WriteString(s.Address.ShortString())
	b.WriteString("::")
	b.WriteString(s.Module)
	b.WriteString("::")
	b.WriteString(s.Name)
	if 0 != len(s.TypeParams) {
		b.WriteString("<")
		for i, p := range s.TypeParams {
			if 0 != i {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(">")
	}
	return b.String()
}

func (p *TypeParam) String() string {
	return p.Name
}

func (v *VectorTag) Encode(w *bcs.Writer) {
	w.WriteVarint(uint64(VectorTagType))
	v.Element.Encode(w)
}

func (s *StructTag) Encode(w *bcs.Writer) {
	w.WriteVarint(uint64(StructTagType))
	w.WriteAddress(s.Address)
	w.WriteString(s.Module)
	w.WriteString(s.Name)
	w.WriteVectorLength(len(s.TypeParams))
	for _, p := range s.TypeParams {
		p.Encode(w)
	}
}

// Encode - only the discriminant, the name is not carried
func (p *TypeParam) Encode(w *bcs.Writer) {
	w.WriteVarint(uint64(TypeParamTagType))
}

// Bytes - canonical encoding of a type tag
func Bytes(tag TypeTag) []byte {
	w := bcs.NewWriter()
	tag.Encode(w)
	return w.Bytes()
}

// Decode - read one type tag
func Decode(r *bcs.Reader) (TypeTag, error) {
	return decode(r, 0)
}

// FromBytes - decode a complete buffer holding one type tag
func FromBytes(data []byte) (TypeTag, error) {
	r := bcs.NewReader(data)
	tag, err := Decode(r)
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return tag, nil
}

func decode(r *bcs.Reader, depth int) (TypeTag, error) {
	if depth > maximumDepth {
		return nil, fault.ErrMalformedTypeTag
	}

	tag, err := r.ReadDiscriminant(uint64(InvalidTagType))
	if nil != err {
		return nil, err
	}

	switch TagType(tag) {
	case VectorTagType:
		element, err := decode(r, depth+1)
		if nil != err {
			return nil, err
		}
		return &VectorTag{Element: element}, nil

	case StructTagType:
		address, err := r.ReadAddress()
		if nil != err {
			return nil, err
		}
		module, err := r.ReadString()
		if nil != err {
			return nil, err
		}
		name, err := r.ReadString()
		if nil != err {
			return nil, err
		}
		n, err := r.ReadVectorLength()
		if nil != err {
			return nil, err
		}
		if n > r.Remaining() {
			return nil, fault.ErrTruncatedInput
		}
		s := &StructTag{
			Address: address,
			Module:  module,
			Name:    name,
		}
		for i := 0; i < n; i += 1 {
			p, err := decode(r, depth+1)
			if nil != err {
				return nil, err
			}
			s.TypeParams = append(s.TypeParams, p)
		}
		return s, nil

	default: // TypeParamTagType
		return &TypeParam{}, nil
	}
}
