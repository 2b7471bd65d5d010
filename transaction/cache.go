// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
)

// ObjectInfo - what is needed to turn an object id into an input
type ObjectInfo struct {
	Ref                  ObjectRef `json:"ref"`
	Shared               bool      `json:"shared"`
	InitialSharedVersion uint64    `json:"initialSharedVersion"`
}

// ObjectResolver - external lookup of current object state, usually
// backed by a node RPC call
type ObjectResolver interface {
	ResolveObject(id bcs.Address) (ObjectInfo, error)
}

// ObjectCache - bounded object state cache
//
// when full, the least recently used entry is evicted; both Add and a
// successful Get count as a use
type ObjectCache struct {
	cache *lru.Cache
}

// NewObjectCache - cache holding at most size objects
func NewObjectCache(size int) (*ObjectCache, error) {
	if size <= 0 {
		return nil, fault.ErrValueOutOfRange
	}
	c, err := lru.New(size)
	if nil != err {
		return nil, err
	}
	return &ObjectCache{cache: c}, nil
}

// Add - store or refresh an object
func (c *ObjectCache) Add(info ObjectInfo) {
	c.cache.Add(info.Ref.ObjectID, info)
}

// store under the id that was asked for, which for a shared object may
// differ from the zero ref the resolver returned
func (c *ObjectCache) put(id bcs.Address, info ObjectInfo) {
	c.cache.Add(id, info)
}

// Get - look up an object by id
func (c *ObjectCache) Get(id bcs.Address) (ObjectInfo, bool) {
	v, ok := c.cache.Get(id)
	if !ok {
		return ObjectInfo{}, false
	}
	return v.(ObjectInfo), true
}

// Remove - forget an object, e.g. after it was consumed or mutated
func (c *ObjectCache) Remove(id bcs.Address) {
	c.cache.Remove(id)
}

// Len - number of cached objects
func (c *ObjectCache) Len() int {
	return c.cache.Len()
}

// Purge - empty the cache
func (c *ObjectCache) Purge() {
	c.cache.Purge()
}

// Resolve - replace every unresolved input using the resolver
//
// cache may be nil; when present it is consulted first and filled with
// every resolved object
func (b *Builder) Resolve(resolver ObjectResolver, cache *ObjectCache) error {
	for i, input := range b.inputs {
		u, ok := input.(UnresolvedObject)
		if !ok {
			continue
		}

		id, err := bcs.AddressFromString(u.ObjectID)
		if nil != err {
			return err
		}

		info, found := ObjectInfo{}, false
		if nil != cache {
			info, found = cache.Get(id)
		}
		if !found {
			if nil == resolver {
				return fault.ErrObjectNotFound
			}
			info, err = resolver.ResolveObject(id)
			if nil != err {
				return err
			}
			if !resolvedAs(id, info) {
				if nil != b.log {
					b.log.Warnf("resolver returned: %s for object: %s", info.Ref.ObjectID, id)
				}
				return fault.ErrObjectMismatch
			}
			if nil != cache {
				cache.put(id, info)
			}
		}

		if info.Shared {
			b.inputs[i] = SharedObject{
				ObjectID:             id,
				InitialSharedVersion: info.InitialSharedVersion,
				Mutable:              u.Mutable,
			}
		} else {
			b.inputs[i] = ImmOrOwnedObject{Ref: info.Ref}
		}
		if nil != b.log {
			b.log.Debugf("resolved input: %d object: %s shared: %t", i, id, info.Shared)
		}
	}
	return nil
}

// an owned result must name the requested object; a shared result may
// leave the ref empty
func resolvedAs(id bcs.Address, info ObjectInfo) bool {
	if info.Shared && info.Ref.ObjectID.IsZero() {
		return true
	}
	return info.Ref.ObjectID == id
}
