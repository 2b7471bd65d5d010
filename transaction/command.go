// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/typetag"
)

// CommandTag - binary discriminant of a command
type CommandTag uint64

// enumerate the possible commands
const (
	MoveCallTag        CommandTag = iota
	TransferObjectsTag CommandTag = iota
	SplitCoinsTag      CommandTag = iota
	MergeCoinsTag      CommandTag = iota
	PublishTag         CommandTag = iota
	MakeMoveVecTag     CommandTag = iota
	UpgradeTag         CommandTag = iota

	// this item must be last
	InvalidCommandTag CommandTag = iota
)

// Command - one step of a programmable transaction
type Command interface {
	Tag() CommandTag
	arguments() []Argument
	pack(w *bcs.Writer)
}

// MoveCall - call package::module::function
type MoveCall struct {
	Package       bcs.Address
	Module        string
	Function      string
	TypeArguments []typetag.TypeTag
	Arguments     []Argument
}

// TransferObjects - send objects to an address
type TransferObjects struct {
	Objects []Argument
	Address Argument
}

// SplitCoins - split amounts off a coin, one new coin per amount
type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

// MergeCoins - merge sources into destination
type MergeCoins struct {
	Destination Argument
	Sources     []Argument
}

// Publish - publish a new package
type Publish struct {
	Modules      [][]byte
	Dependencies []bcs.Address
}

// MakeMoveVec - build a vector; Type may be nil when it can be inferred
type MakeMoveVec struct {
	Type     typetag.TypeTag
	Elements []Argument
}

// Upgrade - upgrade an existing package using an upgrade ticket
type Upgrade struct {
	Modules      [][]byte
	Dependencies []bcs.Address
	Package      bcs.Address
	Ticket       Argument
}

func (*MoveCall) Tag() CommandTag        { return MoveCallTag }
func (*TransferObjects) Tag() CommandTag { return TransferObjectsTag }
func (*SplitCoins) Tag() CommandTag      { return SplitCoinsTag }
func (*MergeCoins) Tag() CommandTag      { return MergeCoinsTag }
func (*Publish) Tag() CommandTag         { return PublishTag }
func (*MakeMoveVec) Tag() CommandTag     { return MakeMoveVecTag }
func (*Upgrade) Tag() CommandTag         { return UpgradeTag }

func (c *MoveCall) arguments() []Argument {
	return c.Arguments
}

func (c *TransferObjects) arguments() []Argument {
	return append(append([]Argument{}, c.Objects...), c.Address)
}

func (c *SplitCoins) arguments() []Argument {
	return append([]Argument{c.Coin}, c.Amounts...)
}

func (c *MergeCoins) arguments() []Argument {
	return append([]Argument{c.Destination}, c.Sources...)
}

func (c *Publish) arguments() []Argument {
	return nil
}

func (c *MakeMoveVec) arguments() []Argument {
	return c.Elements
}

func (c *Upgrade) arguments() []Argument {
	return []Argument{c.Ticket}
}

func (c *MoveCall) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(MoveCallTag))
	w.WriteAddress(c.Package)
	w.WriteString(c.Module)
	w.WriteString(c.Function)
	w.WriteVectorLength(len(c.TypeArguments))
	for _, t := range c.TypeArguments {
		t.Encode(w)
	}
	packArguments(w, c.Arguments)
}

func (c *TransferObjects) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(TransferObjectsTag))
	packArguments(w, c.Objects)
	c.Address.pack(w)
}

func (c *SplitCoins) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(SplitCoinsTag))
	c.Coin.pack(w)
	packArguments(w, c.Amounts)
}

func (c *MergeCoins) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(MergeCoinsTag))
	c.Destination.pack(w)
	packArguments(w, c.Sources)
}

func (c *Publish) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(PublishTag))
	packModules(w, c.Modules, c.Dependencies)
}

func (c *MakeMoveVec) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(MakeMoveVecTag))
	if nil == c.Type {
		w.WriteOptionTag(false)
	} else {
		w.WriteOptionTag(true)
		c.Type.Encode(w)
	}
	packArguments(w, c.Elements)
}

func (c *Upgrade) pack(w *bcs.Writer) {
	w.WriteVarint(uint64(UpgradeTag))
	packModules(w, c.Modules, c.Dependencies)
	w.WriteAddress(c.Package)
	c.Ticket.pack(w)
}

func packArguments(w *bcs.Writer, arguments []Argument) {
	w.WriteVectorLength(len(arguments))
	for _, a := range arguments {
		a.pack(w)
	}
}

func packModules(w *bcs.Writer, modules [][]byte, dependencies []bcs.Address) {
	w.WriteVectorLength(len(modules))
	for _, m := range modules {
		w.WriteByteVector(m)
	}
	w.WriteVectorLength(len(dependencies))
	for _, d := range dependencies {
		w.WriteAddress(d)
	}
}
