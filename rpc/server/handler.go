// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the network facing front end of the node
//
// Owns every inbound connection: decides which subsystem a
// connection belongs to, enforces admission and abuse controls
// before expensive work happens and runs each JSON-RPC request to
// completion on the worker scheduler, never on the accept path.
package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/counter"
	"github.com/tidechain/tidechaind/rpc/jobqueue"
	"github.com/tidechain/tidechaind/rpc/listeners"
	"github.com/tidechain/tidechaind/rpc/ratelimit"
	"github.com/tidechain/tidechaind/rpc/resource"
)

// limit on the JSON-RPC request body
const maximumRequestSize = 32768

// throttle for repeated forbidden role rejections from one host
const (
	forbiddenRatePerSecond = 1
	forbiddenBurst         = 5
)

// Handler - the connection front end
//
// one instance owns the per-port connection counts; construct with
// New and share across all listeners
type Handler struct {
	log        *logger.L
	executor   Executor
	resources  resource.Manager
	scheduler  Scheduler
	overlay    Overlay
	websockets WebsocketEngine
	forbidden  *ratelimit.PerHost
	metrics    *metrics

	countLock sync.Mutex
	counts    map[*listeners.Port]uint64
	gauge     *counter.Counter
}

// New - create a front end handler
//
// overlay and websockets may be nil when the corresponding
// protocols are not configured; registry may be nil to use the
// default prometheus registerer
func New(
	log *logger.L,
	executor Executor,
	resources resource.Manager,
	scheduler Scheduler,
	overlay Overlay,
	websockets WebsocketEngine,
	registry prometheus.Registerer,
) *Handler {
	if nil == registry {
		registry = prometheus.DefaultRegisterer
	}
	return &Handler{
		log:        log,
		executor:   executor,
		resources:  resources,
		scheduler:  scheduler,
		overlay:    overlay,
		websockets: websockets,
		forbidden:  ratelimit.NewPerHost(forbiddenRatePerSecond, forbiddenBurst),
		metrics:    newMetrics(registry),
		counts:     make(map[*listeners.Port]uint64),
	}
}

// OnAccept - per-port admission of a new connection
//
// returns false when the port's concurrent connection limit is
// reached; the refused connection is simply dropped
func (h *Handler) OnAccept(s Session, remote string) bool {
	port := s.Port()

	h.countLock.Lock()
	defer h.countLock.Unlock()

	h.counts[port] += 1

	if 0 != port.Limit && h.counts[port] > port.Limit {
		// refusal holds no slot, so no OnClose will follow
		h.counts[port] -= 1
		h.log.Tracef("%s is full; dropping %s", port.Name, remote)
		return false
	}

	if nil != h.gauge {
		h.gauge.Increment()
	}

	return true
}

// SetWebsockets - attach the WebSocket engine after construction
//
// the engine consumes the handler for message processing so it
// cannot be supplied to New
func (h *Handler) SetWebsockets(websockets WebsocketEngine) {
	h.websockets = websockets
}

// SetConnectionGauge - mirror the total connection count into a
// shared counter, wire before serving starts
func (h *Handler) SetConnectionGauge(gauge *counter.Counter) {
	h.gauge = gauge
}

// OnClose - release the admission slot taken by OnAccept
func (h *Handler) OnClose(s Session) {
	port := s.Port()

	h.countLock.Lock()
	defer h.countLock.Unlock()

	if h.counts[port] > 0 {
		h.counts[port] -= 1
		if nil != h.gauge {
			h.gauge.Decrement()
		}
	}
}

// ConnectionCount - current connections on one port
func (h *Handler) ConnectionCount(port *listeners.Port) uint64 {
	h.countLock.Lock()
	defer h.countLock.Unlock()
	return h.counts[port]
}

// OnHandoff - decide which subsystem owns this connection
//
// wss/ws upgrades move to the WebSocket engine; a peer port moves
// unconditionally to the overlay; anything else is retained and
// continues into the JSON-RPC path
func (h *Handler) OnHandoff(s Session, w http.ResponseWriter, r *http.Request) Handoff {
	port := s.Port()

	if port.Protocol.Has(listeners.WSS) && isWebsocketUpgrade(r) {
		h.websockets.Takeover(w, r, port, s.Remote())
		return MovedToWebsocket
	}

	if port.Protocol.Has(listeners.Peer) {
		conn, ok := hijack(w)
		if !ok {
			h.log.Errorf("%s: cannot hijack peer connection from: %s", port.Name, s.Remote())
			s.Close()
			return MovedToOverlay
		}
		h.overlay.Takeover(conn, r, s.Remote())
		return MovedToOverlay
	}

	if port.Protocol.Has(listeners.WS) && isWebsocketUpgrade(r) {
		h.websockets.Takeover(w, r, port, s.Remote())
		return MovedToWebsocket
	}

	return Retained
}

// a request is an upgrade iff it declares the HTTP Upgrade
// mechanism and asks for the websocket protocol
func isWebsocketUpgrade(r *http.Request) bool {
	if !headerContainsToken(r.Header, "Connection", "upgrade") {
		return false
	}
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

func headerContainsToken(header http.Header, name string, token string) bool {
	for _, value := range header[http.CanonicalHeaderKey(name)] {
		for _, item := range strings.Split(value, ",") {
			if strings.EqualFold(strings.TrimSpace(item), token) {
				return true
			}
		}
	}
	return false
}

func hijack(w http.ResponseWriter) (net.Conn, bool) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		return nil, false
	}
	conn, _, err := hj.Hijack()
	if nil != err {
		return nil, false
	}
	return conn, true
}

// OnRequest - run the JSON-RPC pipeline for a retained session
//
// the cheap envelope independent gates run here; everything else
// runs as a scheduled job with the session detached
func (h *Handler) OnRequest(s Session) {
	port := s.Port()

	// make sure client RPC is enabled on the port
	if !port.Protocol.Client() {
		_ = s.Reply(http.StatusForbidden, errorBody(http.StatusForbidden, "forbidden"))
		s.Close()
		return
	}

	// check user/password authorisation
	if !authorized(port, s.Request().Header) {
		_ = s.Reply(http.StatusForbidden, errorBody(http.StatusForbidden, "forbidden"))
		s.Close()
		return
	}

	detached := s.Detach()
	err := h.scheduler.Post(jobqueue.ClassClient, "rpc-client", func(job jobqueue.Handle) {
		h.processSession(detached, job)
	})
	if nil != err {
		// backlog exhausted: cheapest possible rejection
		_ = s.Reply(http.StatusServiceUnavailable, errorBody(http.StatusServiceUnavailable, "server is overloaded"))
		s.Close()
	}
}

// runs inside a scheduled job
func (h *Handler) processSession(s Session, job jobqueue.Handle) {
	request := s.Request()

	forwardedFor := request.Header.Get("X-Forwarded-For")
	user := request.Header.Get("X-User")

	start := time.Now()
	status, payload := h.processRequest(
		s.Port(),
		request.Body,
		s.Remote(),
		job,
		forwardedFor,
		user,
		start,
	)

	_ = s.Reply(status, payload)

	if request.KeepAlive {
		s.Complete()
	} else {
		s.Close()
	}
}
