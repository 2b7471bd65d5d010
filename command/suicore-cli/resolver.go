// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/transaction"
)

// objects saved from a node query, a JSON list of object info
type fileResolver struct {
	objects map[bcs.Address]transaction.ObjectInfo
}

func newFileResolver(fileName string) (*fileResolver, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var list []transaction.ObjectInfo
	if err := json.Unmarshal(data, &list); nil != err {
		return nil, err
	}

	r := &fileResolver{
		objects: make(map[bcs.Address]transaction.ObjectInfo, len(list)),
	}
	for _, info := range list {
		r.objects[info.Ref.ObjectID] = info
	}
	return r, nil
}

func (r *fileResolver) ResolveObject(id bcs.Address) (transaction.ObjectInfo, error) {
	info, ok := r.objects[id]
	if !ok {
		return transaction.ObjectInfo{}, fault.ErrObjectNotFound
	}
	return info, nil
}
