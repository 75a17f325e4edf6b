// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"io"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/tidechain/tidechaind/rpc/listeners"
)

// httpSession - Session over one net/http exchange
//
// the reply is buffered so a scheduled job can produce it after
// the session was detached from the accept goroutine; the serving
// goroutine flushes it once the job signals completion
type httpSession struct {
	port    *listeners.Port
	request *Request
	remote  string

	lock        sync.Mutex
	replyStatus int
	replyBody   []byte
	closed      bool

	once sync.Once
	done chan struct{}
}

func newHTTPSession(port *listeners.Port, r *http.Request, body []byte) *httpSession {
	return &httpSession{
		port:   port,
		remote: r.RemoteAddr,
		request: &Request{
			Method:    r.Method,
			Header:    r.Header,
			Body:      body,
			KeepAlive: !r.Close,
			Upgrade:   isWebsocketUpgrade(r),
		},
		replyStatus: http.StatusInternalServerError,
		done:        make(chan struct{}),
	}
}

func (s *httpSession) Port() *listeners.Port { return s.port }
func (s *httpSession) Request() *Request     { return s.request }
func (s *httpSession) Remote() string        { return s.remote }

func (s *httpSession) Reply(status int, body []byte) error {
	s.lock.Lock()
	s.replyStatus = status
	s.replyBody = body
	s.lock.Unlock()
	return nil
}

func (s *httpSession) Complete() {
	s.once.Do(func() { close(s.done) })
}

func (s *httpSession) Close() {
	s.lock.Lock()
	s.closed = true
	s.lock.Unlock()
	s.once.Do(func() { close(s.done) })
}

// all state is buffered, the same value is safe off-thread
func (s *httpSession) Detach() Session { return s }

// block until a job finished the exchange
func (s *httpSession) wait() (int, []byte, bool) {
	<-s.done
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.replyStatus, s.replyBody, s.closed
}

// HTTPAdapter - http.Handler for one configured port
type HTTPAdapter struct {
	handler *Handler
	port    *listeners.Port
}

// NewHTTPAdapter - bind a port to the front end handler
func NewHTTPAdapter(handler *Handler, port *listeners.Port) *HTTPAdapter {
	return &HTTPAdapter{
		handler: handler,
		port:    port,
	}
}

// ServeHTTP - accept, admit, hand off or retain one exchange
func (a *HTTPAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := a.handler

	body, err := ioutil.ReadAll(io.LimitReader(r.Body, maximumRequestSize+1))
	if nil != err {
		body = nil
	}

	session := newHTTPSession(a.port, r, body)

	if !h.OnAccept(session, session.Remote()) {
		// refused silently: no protocol level answer
		if conn, ok := hijack(w); ok {
			_ = conn.Close()
		}
		return
	}
	defer h.OnClose(session)

	switch h.OnHandoff(session, w, r) {
	case MovedToWebsocket, MovedToOverlay:
		// another subsystem owns the connection now
		return
	case Retained:
	}

	h.OnRequest(session)

	status, payload, closed := session.wait()
	if closed {
		w.Header().Set("Connection", "close")
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
