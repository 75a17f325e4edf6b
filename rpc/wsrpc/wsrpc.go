// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wsrpc - JSON-RPC over WebSocket
//
// Receives ownership of upgraded connections from the protocol
// handoff dispatcher; each inbound message runs through the same
// request pipeline as the HTTP path and the payload is written
// back as one message.
package wsrpc

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/counter"
	"github.com/tidechain/tidechaind/rpc/listeners"
)

const (
	readBufferSize  = 1024
	writeBufferSize = 1024
	writeTimeout    = 10 * time.Second
)

// Processor - the request pipeline shared with the HTTP path
type Processor interface {
	ProcessMessage(port *listeners.Port, remote string, body []byte) []byte
}

// Engine - the WebSocket protocol engine
type Engine struct {
	log       *logger.L
	processor Processor
	upgrader  websocket.Upgrader
	count     counter.Counter
}

// New - create the engine around a request processor
func New(log *logger.L, processor Processor) *Engine {
	return &Engine{
		log:       log,
		processor: processor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// ConnectionCount - currently upgraded connections
func (e *Engine) ConnectionCount() uint64 {
	return e.count.Current()
}

// Takeover - own an upgraded connection until it finishes
//
// blocks so the caller's admission slot stays held for the whole
// WebSocket session
func (e *Engine) Takeover(w http.ResponseWriter, r *http.Request, port *listeners.Port, remote string) {
	conn, err := e.upgrader.Upgrade(w, r, nil)
	if nil != err {
		e.log.Warnf("%s: upgrade failed from: %s error: %s", port.Name, remote, err)
		return
	}
	defer conn.Close()

	e.count.Increment()
	defer e.count.Decrement()

	e.log.Infof("%s: websocket session from: %s", port.Name, remote)

	for {
		messageType, body, err := conn.ReadMessage()
		if nil != err {
			e.log.Debugf("%s: read from: %s error: %s", port.Name, remote, err)
			return
		}
		if websocket.TextMessage != messageType && websocket.BinaryMessage != messageType {
			continue
		}

		payload := e.processor.ProcessMessage(port, remote, body)

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); nil != err {
			e.log.Debugf("%s: write to: %s error: %s", port.Name, remote, err)
			return
		}
	}
}
