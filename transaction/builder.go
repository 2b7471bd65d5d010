// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"math"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/typetag"
)

// Builder - incrementally assemble a programmable transaction
//
// a Builder has a single owner; it must not be used from several
// goroutines at once. Once Build returns, the Data is independent of
// the Builder.
type Builder struct {
	log *logger.L

	sender      bcs.Address
	senderSet   bool
	gas         GasData
	gasOwnerSet bool
	expiration  Expiration

	inputs   []CallArg
	objects  map[string]uint16
	commands []Command
}

// NewBuilder - an empty transaction
func NewBuilder() *Builder {
	return &Builder{
		objects: make(map[string]uint16),
	}
}

// SetLog - optional channel for debug output
func (b *Builder) SetLog(log *logger.L) {
	b.log = log
}

// SetSender - the signing account; gas owner defaults to it
func (b *Builder) SetSender(sender bcs.Address) {
	b.sender = sender
	b.senderSet = true
}

// SetGasOwner - sponsor paying for gas
func (b *Builder) SetGasOwner(owner bcs.Address) {
	b.gas.Owner = owner
	b.gasOwnerSet = true
}

// SetGasPrice - price per gas unit
func (b *Builder) SetGasPrice(price uint64) {
	b.gas.Price = price
}

// SetGasBudget - maximum gas to spend
func (b *Builder) SetGasBudget(budget uint64) {
	b.gas.Budget = budget
}

// SetGasPayment - coins used to pay for gas
func (b *Builder) SetGasPayment(payment ...ObjectRef) {
	b.gas.Payment = append([]ObjectRef{}, payment...)
}

// SetExpiration - NoExpiration or an epoch
func (b *Builder) SetExpiration(expiration Expiration) {
	b.expiration = expiration
}

// Gas - the gas coin as an argument
func (b *Builder) Gas() Argument {
	return GasCoin{}
}

// Pure - add bcs encoded bytes as an input
//
// pure inputs are never merged, each call adds a slot
func (b *Builder) Pure(data []byte) (Input, error) {
	return b.appendInput(Pure{Bytes: append([]byte{}, data...)})
}

// PureValue - add the encoding of a typed value as an input
func (b *Builder) PureValue(v bcs.Value) (Input, error) {
	data, err := bcs.Encode(v)
	if nil != err {
		return Input{}, err
	}
	return b.Pure(data)
}

// Object - add an owned or immutable object
func (b *Builder) Object(ref ObjectRef) (Input, error) {
	return b.addObject(ImmOrOwnedObject{Ref: ref})
}

// SharedObject - add a shared object
func (b *Builder) SharedObject(id bcs.Address, initialSharedVersion uint64, mutable bool) (Input, error) {
	return b.addObject(SharedObject{
		ObjectID:             id,
		InitialSharedVersion: initialSharedVersion,
		Mutable:              mutable,
	})
}

// ReceivingObject - add an object to be received
func (b *Builder) ReceivingObject(ref ObjectRef) (Input, error) {
	return b.addObject(ReceivingObject{Ref: ref})
}

// UnresolvedObject - add an object known only by id
func (b *Builder) UnresolvedObject(id string, mutable bool) (Input, error) {
	a, err := bcs.AddressFromString(id)
	if nil != err {
		return Input{}, err
	}
	return b.addObject(UnresolvedObject{ObjectID: a.String(), Mutable: mutable})
}

// MoveCall - call "package::module::function"
func (b *Builder) MoveCall(target string, typeArguments []string, arguments ...Argument) (Result, error) {
	parts := strings.Split(target, "::")
	if 3 != len(parts) || "" == parts[1] || "" == parts[2] {
		return Result{}, fault.ErrMalformedMoveCallTarget
	}
	pkg, err := bcs.AddressFromString(parts[0])
	if nil != err {
		return Result{}, fault.ErrMalformedMoveCallTarget
	}

	tags := make([]typetag.TypeTag, 0, len(typeArguments))
	for _, s := range typeArguments {
		t, err := typetag.Parse(s)
		if nil != err {
			return Result{}, err
		}
		tags = append(tags, t)
	}

	return b.addCommand(&MoveCall{
		Package:       pkg,
		Module:        parts[1],
		Function:      parts[2],
		TypeArguments: tags,
		Arguments:     append([]Argument{}, arguments...),
	})
}

// TransferObjects - send objects to the address argument
func (b *Builder) TransferObjects(objects []Argument, address Argument) (Result, error) {
	if 0 == len(objects) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(&TransferObjects{
		Objects: append([]Argument{}, objects...),
		Address: address,
	})
}

// SplitCoins - one new coin per amount; use Result.Nested to reach each
func (b *Builder) SplitCoins(coin Argument, amounts ...Argument) (Result, error) {
	if 0 == len(amounts) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(&SplitCoins{
		Coin:    coin,
		Amounts: append([]Argument{}, amounts...),
	})
}

// MergeCoins - merge sources into destination
func (b *Builder) MergeCoins(destination Argument, sources ...Argument) (Result, error) {
	if 0 == len(sources) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(&MergeCoins{
		Destination: destination,
		Sources:     append([]Argument{}, sources...),
	})
}

// Publish - publish compiled modules; the result is the upgrade capability
func (b *Builder) Publish(modules [][]byte, dependencies []bcs.Address) (Result, error) {
	if 0 == len(modules) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(&Publish{
		Modules:      copyModules(modules),
		Dependencies: append([]bcs.Address{}, dependencies...),
	})
}

// Upgrade - replace package using an authorized upgrade ticket
func (b *Builder) Upgrade(modules [][]byte, dependencies []bcs.Address, pkg bcs.Address, ticket Argument) (Result, error) {
	if 0 == len(modules) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(&Upgrade{
		Modules:      copyModules(modules),
		Dependencies: append([]bcs.Address{}, dependencies...),
		Package:      pkg,
		Ticket:       ticket,
	})
}

// MakeMoveVec - build vector<T>; an empty elementType means infer it
// from the elements, which then must not be empty
func (b *Builder) MakeMoveVec(elementType string, elements ...Argument) (Result, error) {
	c := &MakeMoveVec{
		Elements: append([]Argument{}, elements...),
	}
	if "" != elementType {
		t, err := typetag.Parse(elementType)
		if nil != err {
			return Result{}, err
		}
		c.Type = t
	} else if 0 == len(elements) {
		return Result{}, fault.ErrEmptyArguments
	}
	return b.addCommand(c)
}

// Inputs - current input list, shared with the builder
func (b *Builder) Inputs() []CallArg {
	return b.inputs
}

// Commands - current command list, shared with the builder
func (b *Builder) Commands() []Command {
	return b.commands
}

// IsPreparedForSerialization - false while any input still needs resolving
func (b *Builder) IsPreparedForSerialization() bool {
	for _, input := range b.inputs {
		if _, ok := input.(UnresolvedObject); ok {
			return false
		}
	}
	return true
}

// Build - freeze the current state
func (b *Builder) Build() (*Data, error) {
	if !b.senderSet {
		return nil, fault.ErrMissingSender
	}
	if !b.IsPreparedForSerialization() {
		return nil, fault.ErrUnresolvedInput
	}

	gas := b.gas
	gas.Payment = append([]ObjectRef{}, b.gas.Payment...)
	if !b.gasOwnerSet {
		gas.Owner = b.sender
	}

	data := &Data{
		Sender:     b.sender,
		Gas:        gas,
		Expiration: b.expiration,
		Inputs:     append([]CallArg{}, b.inputs...),
		Commands:   append([]Command{}, b.commands...),
	}
	if nil != b.log {
		b.log.Debugf("build: sender: %s  inputs: %d  commands: %d", b.sender, len(data.Inputs), len(data.Commands))
	}
	return data, nil
}

func (b *Builder) appendInput(arg CallArg) (Input, error) {
	if len(b.inputs) > math.MaxUint16 {
		return Input{}, fault.ErrTooManyItems
	}
	index := uint16(len(b.inputs))
	b.inputs = append(b.inputs, arg)
	return Input{index: index}, nil
}

// an object already in the input list keeps its slot
func (b *Builder) addObject(arg CallArg) (Input, error) {
	key, _ := objectKey(arg)

	index, ok := b.objects[key]
	if !ok {
		input, err := b.appendInput(arg)
		if nil != err {
			return input, err
		}
		b.objects[key] = input.index
		return input, nil
	}

	b.inputs[index] = mergeObject(b.inputs[index], arg)
	if nil != b.log {
		b.log.Debugf("object: %s reuses input: %d", key, index)
	}
	return Input{index: index}, nil
}

// combine two inputs for the same object
//
// a resolved object replaces an unresolved one and mutability only
// ever widens
func mergeObject(existing CallArg, added CallArg) CallArg {
	switch e := existing.(type) {
	case UnresolvedObject:
		switch a := added.(type) {
		case UnresolvedObject:
			e.Mutable = e.Mutable || a.Mutable
			return e
		case SharedObject:
			a.Mutable = a.Mutable || e.Mutable
			return a
		default:
			return added
		}
	case SharedObject:
		switch a := added.(type) {
		case SharedObject:
			e.Mutable = e.Mutable || a.Mutable
		case UnresolvedObject:
			e.Mutable = e.Mutable || a.Mutable
		}
		return e
	}
	return existing
}

func (b *Builder) addCommand(c Command) (Result, error) {
	for _, a := range c.arguments() {
		if err := b.checkArgument(a); nil != err {
			if nil != b.log {
				b.log.Warnf("command: %d rejected: %s", c.Tag(), err)
			}
			return Result{}, err
		}
	}
	if len(b.commands) > math.MaxUint16 {
		return Result{}, fault.ErrTooManyItems
	}

	index := uint16(len(b.commands))
	b.commands = append(b.commands, c)
	if nil != b.log {
		b.log.Debugf("command: %d added as result: %d", c.Tag(), index)
	}
	return Result{index: index}, nil
}

// references must name existing inputs and earlier commands
func (b *Builder) checkArgument(a Argument) error {
	switch arg := a.(type) {
	case GasCoin:
		return nil
	case Input:
		if int(arg.index) >= len(b.inputs) {
			return fault.ErrInputOutOfRange
		}
	case Result:
		if int(arg.index) >= len(b.commands) {
			return fault.ErrForwardReference
		}
	case NestedResult:
		if int(arg.index) >= len(b.commands) {
			return fault.ErrForwardReference
		}
	default:
		return fault.ErrInvalidDiscriminant
	}
	return nil
}

func copyModules(modules [][]byte) [][]byte {
	result := make([][]byte, 0, len(modules))
	for _, m := range modules {
		result = append(result, append([]byte{}, m...))
	}
	return result
}
