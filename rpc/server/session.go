// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net"
	"net/http"

	"github.com/tidechain/tidechaind/rpc/jobqueue"
	"github.com/tidechain/tidechaind/rpc/listeners"
	"github.com/tidechain/tidechaind/rpc/resource"
)

// Request - the inbound HTTP level request of one session
type Request struct {
	Method    string
	Header    http.Header
	Body      []byte
	KeepAlive bool
	Upgrade   bool
}

// Session - one accepted connection/request
//
// Implemented by the transport adapter; the handler only ever
// sees this interface. Detach moves ownership of the session off
// the accept context so the reply can be produced by a scheduled
// job; Complete and Close finish the exchange.
type Session interface {
	Port() *listeners.Port
	Request() *Request
	Remote() string
	Reply(status int, body []byte) error
	Complete()
	Close()
	Detach() Session
}

// Handoff - outcome of the protocol handoff decision
//
// consumed exhaustively by the serving loop: once a connection is
// moved this pipeline must not touch it again
type Handoff int

// all handoff outcomes
const (
	Retained Handoff = iota
	MovedToWebsocket
	MovedToOverlay
)

// String - handoff outcome for logging
func (h Handoff) String() string {
	switch h {
	case Retained:
		return "retained"
	case MovedToWebsocket:
		return "websocket"
	case MovedToOverlay:
		return "overlay"
	default:
		return "*unknown*"
	}
}

// Overlay - boundary to the peer-to-peer overlay subsystem
//
// receives ownership of the raw transport, the parsed first
// request and the remote endpoint; never returns control
type Overlay interface {
	Takeover(conn net.Conn, request *http.Request, remote string)
}

// WebsocketEngine - boundary to the WebSocket protocol engine
//
// triggered only on a protocol negotiated upgrade; must not
// return until the connection is finished
type WebsocketEngine interface {
	Takeover(w http.ResponseWriter, r *http.Request, port *listeners.Port, remote string)
}

// Executor - external command executor keyed by the injected
// "command" value; application level errors are carried inside
// the returned object under "error"
type Executor interface {
	Execute(ctx *Context) map[string]interface{}
}

// Scheduler - worker scheduler accepting detached request jobs
type Scheduler interface {
	Post(class jobqueue.Class, name string, run func(jobqueue.Handle)) error
}

// Context - ephemeral per-request bundle handed to the executor
type Context struct {
	Job          jobqueue.Handle
	Method       string
	Params       map[string]interface{}
	Role         Role
	Charge       resource.Charge
	Remote       string
	User         string
	ForwardedFor string
}
