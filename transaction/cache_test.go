// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/transaction"
)

// resolver backed by a map, counting lookups
type fixedResolver struct {
	objects map[bcs.Address]transaction.ObjectInfo
	calls   int
}

func (f *fixedResolver) ResolveObject(id bcs.Address) (transaction.ObjectInfo, error) {
	f.calls += 1
	info, ok := f.objects[id]
	if !ok {
		return transaction.ObjectInfo{}, fault.ErrObjectNotFound
	}
	return info, nil
}

func newResolver() *fixedResolver {
	return &fixedResolver{
		objects: map[bcs.Address]transaction.ObjectInfo{
			coinID: {
				Ref: transaction.ObjectRef{ObjectID: coinID, Version: 12},
			},
			poolID: {
				Ref:                  transaction.ObjectRef{ObjectID: poolID, Version: 40},
				Shared:               true,
				InitialSharedVersion: 4,
			},
		},
	}
}

func TestObjectCacheEviction(t *testing.T) {
	_, err := transaction.NewObjectCache(0)
	assert.Equal(t, fault.ErrValueOutOfRange, err, "zero size")

	c, err := transaction.NewObjectCache(2)
	require.Nil(t, err, "new cache")

	a := transaction.ObjectInfo{Ref: transaction.ObjectRef{ObjectID: bcs.MustAddress("0xa")}}
	b := transaction.ObjectInfo{Ref: transaction.ObjectRef{ObjectID: bcs.MustAddress("0xb")}}
	x := transaction.ObjectInfo{Ref: transaction.ObjectRef{ObjectID: bcs.MustAddress("0xc")}}

	c.Add(a)
	c.Add(b)
	_, ok := c.Get(a.Ref.ObjectID)
	assert.True(t, ok, "a present")

	c.Add(x)
	assert.Equal(t, 2, c.Len(), "bounded")

	_, ok = c.Get(b.Ref.ObjectID)
	assert.False(t, ok, "least recently used evicted")
	_, ok = c.Get(a.Ref.ObjectID)
	assert.True(t, ok, "recently used kept")

	c.Remove(a.Ref.ObjectID)
	assert.Equal(t, 1, c.Len(), "removed")

	c.Purge()
	assert.Equal(t, 0, c.Len(), "purged")
}

func TestResolve(t *testing.T) {
	b := newBuilder()
	coin, err := b.UnresolvedObject("0xc011", false)
	require.Nil(t, err, "coin")
	pool, err := b.UnresolvedObject(poolID.String(), true)
	require.Nil(t, err, "pool")
	_, err = b.Pure(bcs.PureU64(1))
	require.Nil(t, err, "pure")

	cache, err := transaction.NewObjectCache(8)
	require.Nil(t, err, "cache")

	resolver := newResolver()
	require.Nil(t, b.Resolve(resolver, cache), "resolve")
	assert.Equal(t, 2, resolver.calls, "one lookup per object")
	assert.Equal(t, 2, cache.Len(), "cache filled")
	assert.True(t, b.IsPreparedForSerialization(), "prepared")

	inputs := b.Inputs()
	owned, ok := inputs[coin.Index()].(transaction.ImmOrOwnedObject)
	require.True(t, ok, "owned input")
	assert.Equal(t, uint64(12), owned.Ref.Version, "version")

	shared, ok := inputs[pool.Index()].(transaction.SharedObject)
	require.True(t, ok, "shared input")
	assert.Equal(t, uint64(4), shared.InitialSharedVersion, "initial version")
	assert.True(t, shared.Mutable, "mutability kept")

	// a second builder is served from the cache
	b2 := newBuilder()
	_, err = b2.UnresolvedObject("0xc011", false)
	require.Nil(t, err, "coin again")
	require.Nil(t, b2.Resolve(resolver, cache), "resolve from cache")
	assert.Equal(t, 2, resolver.calls, "no further lookups")

	_, err = b2.Build()
	assert.Nil(t, err, "build after resolve")
}

func TestResolveFailures(t *testing.T) {
	b := newBuilder()
	_, err := b.UnresolvedObject("0xdead", false)
	require.Nil(t, err, "unresolved")

	assert.Equal(t, fault.ErrObjectNotFound, b.Resolve(newResolver(), nil), "unknown object")
	assert.Equal(t, fault.ErrObjectNotFound, b.Resolve(nil, nil), "no resolver")
	assert.False(t, b.IsPreparedForSerialization(), "still unresolved")
}

// resolver answering every lookup with the same object
type constantResolver struct {
	info transaction.ObjectInfo
}

func (c constantResolver) ResolveObject(id bcs.Address) (transaction.ObjectInfo, error) {
	return c.info, nil
}

func TestResolveWrongObject(t *testing.T) {
	b := newBuilder()
	requested, err := b.UnresolvedObject("0xa", false)
	require.Nil(t, err, "unresolved")

	cache, err := transaction.NewObjectCache(4)
	require.Nil(t, err, "cache")

	other := constantResolver{
		info: transaction.ObjectInfo{
			Ref: transaction.ObjectRef{ObjectID: bcs.MustAddress("0xbad"), Version: 9},
		},
	}
	assert.Equal(t, fault.ErrObjectMismatch, b.Resolve(other, cache), "different object")
	assert.False(t, b.IsPreparedForSerialization(), "input left unresolved")
	assert.Equal(t, 0, cache.Len(), "nothing cached")

	_, ok := b.Inputs()[requested.Index()].(transaction.UnresolvedObject)
	assert.True(t, ok, "slot not replaced")

	again, err := b.UnresolvedObject("0xa", false)
	require.Nil(t, err, "re-add")
	assert.Equal(t, requested.Index(), again.Index(), "same slot")
	assert.Equal(t, 1, len(b.Inputs()), "single input")
}

func TestResolveSharedWithoutRef(t *testing.T) {
	id := bcs.MustAddress("0xc")

	b := newBuilder()
	_, err := b.UnresolvedObject(id.String(), true)
	require.Nil(t, err, "unresolved")

	cache, err := transaction.NewObjectCache(4)
	require.Nil(t, err, "cache")

	sharedOnly := constantResolver{
		info: transaction.ObjectInfo{
			Shared:               true,
			InitialSharedVersion: 77,
		},
	}
	require.Nil(t, b.Resolve(sharedOnly, cache), "resolve")

	info, ok := cache.Get(id)
	require.True(t, ok, "cached under requested id")
	assert.Equal(t, uint64(77), info.InitialSharedVersion, "initial version")
	_, ok = cache.Get(bcs.Address{})
	assert.False(t, ok, "nothing under zero address")

	shared, ok := b.Inputs()[0].(transaction.SharedObject)
	require.True(t, ok, "shared input")
	assert.Equal(t, id, shared.ObjectID, "object id")

	// a shared result naming some other object is still rejected
	b2 := newBuilder()
	_, err = b2.UnresolvedObject("0xd", true)
	require.Nil(t, err, "unresolved")
	liar := constantResolver{
		info: transaction.ObjectInfo{
			Ref:    transaction.ObjectRef{ObjectID: bcs.MustAddress("0xe")},
			Shared: true,
		},
	}
	assert.Equal(t, fault.ErrObjectMismatch, b2.Resolve(liar, nil), "shared mismatch")
}
