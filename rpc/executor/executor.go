// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - JSON-RPC command dispatch
//
// A registry mapping the injected "command" value to a handler
// function. Ledger business commands are registered by their own
// subsystems; this package only carries the node level built-ins.
package executor

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/counter"
	"github.com/tidechain/tidechaind/mode"
	"github.com/tidechain/tidechaind/rpc/server"
)

// CommandFunc - one registered command
//
// an application level failure is reported as an "error" member
// of the returned object, never as a Go error
type CommandFunc func(ctx *server.Context) map[string]interface{}

// Executor - the command registry
type Executor struct {
	log *logger.L

	lock     sync.RWMutex
	commands map[string]CommandFunc
}

// New - create an empty registry
func New(log *logger.L) *Executor {
	return &Executor{
		log:      log,
		commands: make(map[string]CommandFunc),
	}
}

// Register - add or replace a command
func (e *Executor) Register(name string, fn CommandFunc) {
	e.lock.Lock()
	e.commands[name] = fn
	e.lock.Unlock()
}

// Execute - dispatch one request to its command
func (e *Executor) Execute(ctx *server.Context) map[string]interface{} {
	e.lock.RLock()
	fn, ok := e.commands[ctx.Method]
	e.lock.RUnlock()

	if !ok {
		e.log.Warnf("unknown command: %q", ctx.Method)
		return map[string]interface{}{
			"error": "unknown command",
		}
	}

	return fn(ctx)
}

// NewStandard - a registry preloaded with the node built-ins
func NewStandard(log *logger.L, version string, start time.Time, connections *counter.Counter) *Executor {
	e := New(log)

	e.Register("ping", func(ctx *server.Context) map[string]interface{} {
		return map[string]interface{}{}
	})

	e.Register("server_info", func(ctx *server.Context) map[string]interface{} {
		info := map[string]interface{}{
			"version":     version,
			"mode":        mode.String(),
			"uptime":      time.Since(start).String(),
			"connections": connections.Current(),
		}
		if ctx.Role.IsUnlimited() {
			info["role"] = ctx.Role.String()
		}
		return info
	})

	return e
}
