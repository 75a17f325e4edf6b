// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Reloader - serve the current key pair and pick up replacements
//
// watches the configured certificate and key files; a change event
// reloads the pair so new connections use the fresh material
// without restarting the listener
type Reloader struct {
	log             *logger.L
	name            string
	certificateFile string
	keyFile         string
	chainFile       string

	lock        sync.RWMutex
	certificate *tls.Certificate
	fingerprint [32]byte

	watcher *fsnotify.Watcher
}

// NewReloader - load the initial pair and start watching
func NewReloader(log *logger.L, name string, certificateFile string, keyFile string, chainFile string) (*Reloader, error) {
	r := &Reloader{
		log:             log,
		name:            name,
		certificateFile: certificateFile,
		keyFile:         keyFile,
		chainFile:       chainFile,
	}

	if err := r.reload(); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("%s new watcher error: %s", name, err)
		return nil, err
	}
	r.watcher = watcher

	for _, file := range []string{certificateFile, keyFile} {
		if err := watcher.Add(file); nil != err {
			log.Errorf("%s watch: %q error: %s", name, file, err)
			_ = watcher.Close()
			return nil, err
		}
	}

	go r.run()

	return r, nil
}

// TLSConfig - a config serving whatever pair is current
func (r *Reloader) TLSConfig() *tls.Config {
	return &tls.Config{
		GetCertificate: func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
			r.lock.RLock()
			defer r.lock.RUnlock()
			return r.certificate, nil
		},
	}
}

// Fingerprint - fingerprint of the current certificate
func (r *Reloader) Fingerprint() [32]byte {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.fingerprint
}

// Stop - stop watching
func (r *Reloader) Stop() {
	if nil != r.watcher {
		_ = r.watcher.Close()
	}
}

func (r *Reloader) reload() error {
	tlsConfiguration, fin, err := GetFromFiles(r.log, r.name, r.certificateFile, r.keyFile, r.chainFile)
	if nil != err {
		return err
	}

	r.lock.Lock()
	r.certificate = &tlsConfiguration.Certificates[0]
	r.fingerprint = fin
	r.lock.Unlock()

	r.log.Infof("%s: SHA3-256 fingerprint: %x", r.name, fin)

	return nil
}

func (r *Reloader) run() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if 0 == event.Op&(fsnotify.Write|fsnotify.Create) {
				continue
			}
			r.log.Infof("%s: file event: %v", r.name, event)
			if err := r.reload(); nil != err {
				// keep serving the previous pair
				r.log.Errorf("%s: reload failed: %s", r.name, err)
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Errorf("%s: watcher error: %s", r.name, err)
		}
	}
}
