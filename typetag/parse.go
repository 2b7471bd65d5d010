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

const vectorPrefix = "vector<"

// Parse - convert text of the form address::module::Name<T1, T2>
//
// text with fewer than three "::" separated parts is returned as a
// TypeParam carrying the raw text, so "T" and "u64" are accepted
func Parse(text string) (TypeTag, error) {
	return parse(text, 0)
}

// ParseStructTag - as Parse but the result must be a struct
func ParseStructTag(text string) (*StructTag, error) {
	tag, err := Parse(text)
	if nil != err {
		return nil, err
	}
	s, ok := tag.(*StructTag)
	if !ok {
		return nil, fault.ErrNotStructTag
	}
	return s, nil
}

func parse(text string, depth int) (TypeTag, error) {
	if depth > maximumDepth {
		return nil, fault.ErrMalformedTypeTag
	}

	s := strings.TrimSpace(text)
	if "" == s {
		return nil, fault.ErrMalformedTypeTag
	}

	if strings.HasPrefix(s, vectorPrefix) {
		if !strings.HasSuffix(s, ">") {
			return nil, fault.ErrMalformedTypeTag
		}
		inner := s[len(vectorPrefix) : len(s)-1]
		args, err := splitArguments(inner)
		if nil != err {
			return nil, err
		}
		if 1 != len(args) {
			return nil, fault.ErrMalformedTypeTag
		}
		element, err := parse(args[0], depth+1)
		if nil != err {
			return nil, err
		}
		return &VectorTag{Element: element}, nil
	}

	parts := strings.SplitN(s, "::", 3)
	if len(parts) < 3 {
		return &TypeParam{Name: s}, nil
	}

	address, err := bcs.AddressFromString(parts[0])
	if nil != err {
		return nil, fault.ErrMalformedTypeTag
	}

	module := parts[1]
	if !isIdentifier(module) {
		return nil, fault.ErrMalformedTypeTag
	}

	name := parts[2]
	var params []TypeTag

	if open := strings.IndexByte(name, '<'); open >= 0 {
		if !strings.HasSuffix(name, ">") {
			return nil, fault.ErrMalformedTypeTag
		}
		args, err := splitArguments(name[open+1 : len(name)-1])
		if nil != err {
			return nil, err
		}
		for _, a := range args {
			p, err := parse(a, depth+1)
			if nil != err {
				return nil, err
			}
			params = append(params, p)
		}
		name = name[:open]
	}

	if !isIdentifier(name) {
		return nil, fault.ErrMalformedTypeTag
	}

	return &StructTag{
		Address:    address,
		Module:     module,
		Name:       name,
		TypeParams: params,
	}, nil
}

// split at top level commas, tracking <> depth
func splitArguments(body string) ([]string, error) {
	args := make([]string, 0, 2)
	depth := 0
	start := 0

	for i := 0; i < len(body); i += 1 {
		switch body[i] {
		case '<':
			depth += 1
		case '>':
			depth -= 1
			if depth < 0 {
				return nil, fault.ErrMalformedTypeTag
			}
		case ',':
			if 0 == depth {
				args = append(args, body[start:i])
				start = i + 1
			}
		}
	}
	if 0 != depth {
		return nil, fault.ErrMalformedTypeTag
	}
	args = append(args, body[start:])

	for i, a := range args {
		a = strings.TrimSpace(a)
		if "" == a {
			return nil, fault.ErrMalformedTypeTag
		}
		args[i] = a
	}
	return args, nil
}

// Move identifiers: letters, digits and underscore, not starting with a digit
func isIdentifier(s string) bool {
	if "" == s {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '_' == c:
		case '0' <= c && c <= '9':
			if 0 == i {
				return false
			}
		default:
			return false
		}
	}
	return true
}
