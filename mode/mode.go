// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - the global node operating mode
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/fault"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Resynchronise
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log        *logger.L
	mode       Mode
	standalone bool

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system
//
// standalone disables all peer networking so the node runs
// an isolated ledger
func Initialise(standalone bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	globalData.standalone = standalone
	globalData.mode = Resynchronise
	if standalone {
		// no peers to resynchronise from
		globalData.mode = Normal
	}

	globalData.initialised = true

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	Set(Stopped)

	globalData.Lock()
	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Set - change mode
func Set(mode Mode) {
	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	} else {
		globalData.log.Errorf("ignore invalid set: %d", mode)
	}
}

// Is - detect the current mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect not the current mode
func IsNot(mode Mode) bool {
	return !Is(mode)
}

// IsStandalone - true if running without any peer networking
func IsStandalone() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.standalone
}

// String - current mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Resynchronise:
		return "Resynchronise"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}

// String - current mode of the node as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}
