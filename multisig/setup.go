// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/suicore/fault"
)

// globals
type multisigData struct {
	sync.RWMutex

	log *logger.L

	initialised bool
}

var globalData multisigData

// Initialise - open the multisig log channel
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("multisig")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - close the log channel
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.log = nil

	globalData.initialised = false
	return nil
}

// nil until Initialise
func channel() *logger.L {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.log
}
