// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up the network front end
//
// Wires the validated listener Setup to the connection handler and
// starts one serving loop per configured port.
package rpc

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/counter"
	"github.com/tidechain/tidechaind/fault"
	"github.com/tidechain/tidechaind/rpc/certificate"
	"github.com/tidechain/tidechaind/rpc/jobqueue"
	"github.com/tidechain/tidechaind/rpc/listeners"
	"github.com/tidechain/tidechaind/rpc/resource"
	"github.com/tidechain/tidechaind/rpc/server"
	"github.com/tidechain/tidechaind/rpc/wsrpc"
)

const (
	clientWorkers = 8
	clientBacklog = 256

	readHeaderTimeout = 10 * time.Second
	maximumHeaderSize = 1 << 20
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	queue     *jobqueue.Queue
	handler   *server.Handler
	servers   []*http.Server
	reloaders []*certificate.Reloader

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start serving every configured port
//
// overlay may be nil when no peer port is configured
func Initialise(setup *listeners.Setup, exec server.Executor, overlay server.Overlay, connections *counter.Counter) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	globalData.queue = jobqueue.New(logger.New("jobqueue"), clientWorkers, clientBacklog)

	resources := resource.New(logger.New("resource"))

	handler := server.New(
		log,
		exec,
		resources,
		globalData.queue,
		overlay,
		nil,
		nil,
	)
	handler.SetWebsockets(wsrpc.New(logger.New("wsrpc"), handler))
	if nil != connections {
		handler.SetConnectionGauge(connections)
	}
	globalData.handler = handler

	for i := range setup.Ports {
		port := &setup.Ports[i]
		if err := startPort(log, handler, port); nil != err {
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all serving loops
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	for _, s := range globalData.servers {
		_ = s.Close()
	}
	globalData.servers = nil

	for _, r := range globalData.reloaders {
		r.Stop()
	}
	globalData.reloaders = nil

	globalData.queue.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - current connections on one port
func ConnectionCount(port *listeners.Port) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.handler {
		return 0
	}
	return globalData.handler.ConnectionCount(port)
}

func startPort(log *logger.L, handler *server.Handler, port *listeners.Port) error {
	adapter := server.NewHTTPAdapter(handler, port)

	var tlsConfiguration *tls.Config
	if port.Protocol.Secure() {
		var err error
		tlsConfiguration, err = portTLS(log, port)
		if nil != err {
			return err
		}
		tlsConfiguration.NextProtos = []string{"http/1.1"}
	}

	s := &http.Server{
		Addr:              port.Address(),
		Handler:           adapter,
		ReadHeaderTimeout: readHeaderTimeout,
		MaxHeaderBytes:    maximumHeaderSize,
	}

	ln, err := net.Listen("tcp", port.Address())
	if nil != err {
		log.Errorf("%s listen: %s error: %s", port.Name, port.Address(), err)
		return err
	}
	if nil != tlsConfiguration {
		ln = tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, tlsConfiguration)
	}

	log.Infof("starting server: %s [%s] on: %s", port.Name, port.Protocol, port.Address())

	globalData.servers = append(globalData.servers, s)
	go func() {
		err := s.Serve(ln)
		log.Infof("%s server terminated: %s", port.Name, err)
	}()

	return nil
}

func portTLS(log *logger.L, port *listeners.Port) (*tls.Config, error) {
	if "" == port.TLSCertificate || "" == port.TLSKey {
		// no material configured: self sign
		tlsConfiguration, fin, err := certificate.SelfSigned(log, port.Name, []string{port.IP})
		if nil != err {
			return nil, err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", port.Name, fin)
		return tlsConfiguration, nil
	}

	reloader, err := certificate.NewReloader(log, port.Name, port.TLSCertificate, port.TLSKey, port.TLSChain)
	if nil != err {
		return nil, err
	}
	globalData.reloaders = append(globalData.reloaders, reloader)
	return reloader.TLSConfig(), nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}
