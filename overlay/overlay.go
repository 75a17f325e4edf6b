// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package overlay - receiving end of the peer port handoff
//
// The overlay protocol engine owns every connection surrendered by
// the front end. The Endpoint here is the attachment point: an
// engine registers itself with Attach and receives the raw
// connections; without an engine the connection is dropped.
package overlay

import (
	"net"
	"net/http"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/counter"
)

// Engine - consumer of surrendered peer connections
type Engine interface {
	Serve(conn net.Conn, remote string)
}

// Endpoint - routes taken over connections to the attached engine
type Endpoint struct {
	sync.RWMutex

	log    *logger.L
	engine Engine

	taken counter.Counter
}

// New - create the overlay attachment point
func New(log *logger.L) *Endpoint {
	return &Endpoint{
		log: log,
	}
}

// Attach - register the overlay protocol engine
func (e *Endpoint) Attach(engine Engine) {
	e.Lock()
	e.engine = engine
	e.Unlock()
}

// Takeover - receive ownership of a raw peer connection
//
// called by the front end after a successful hijack; must never
// return the connection
func (e *Endpoint) Takeover(conn net.Conn, request *http.Request, remote string) {
	e.taken.Increment()

	e.RLock()
	engine := e.engine
	e.RUnlock()

	if nil == engine {
		e.log.Warnf("no overlay engine attached; dropping peer: %s", remote)
		_ = conn.Close()
		return
	}

	e.log.Infof("peer connection from: %s", remote)
	engine.Serve(conn, remote)
}

// Taken - total connections surrendered to the overlay
func (e *Endpoint) Taken() uint64 {
	return e.taken.Current()
}
