// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package resource - per-endpoint abuse accounting
//
// Every inbound endpoint accumulates a cost balance that decays
// over time; when the balance passes the drop threshold the
// endpoint is refused before any expensive work happens.
// Privileged roles receive an unlimited consumer that is never
// refused but still recorded.
package resource

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
)

// Charge - the cost debited against a consumer for one request
type Charge uint64

// fee schedule
const (
	FeeReferenceRPC Charge = 100 // ordinary client RPC
)

const (
	// balance above this refuses the endpoint
	dropThreshold = 8000

	// balance halves every decayHalfLife
	decayHalfLife = 8 * time.Second

	// forget idle endpoints
	entryExpiration      = 5 * time.Minute
	entryCleanupInterval = 10 * time.Minute
)

// Consumer - abuse tracking handle for one remote endpoint
type Consumer interface {
	// ShouldDisconnect - true if the endpoint exhausted its budget
	ShouldDisconnect() bool

	// Charge - debit a cost after a request was processed
	Charge(c Charge)
}

// Manager - issues consumers keyed by remote endpoint
type Manager interface {
	// NewInbound - consumer for an ordinary remote endpoint
	NewInbound(host string) Consumer

	// NewUnlimited - consumer for a privileged request
	NewUnlimited(host string) Consumer
}

type entry struct {
	sync.Mutex
	balance uint64
	updated time.Time
}

// apply decay and return the current balance
func (e *entry) decayed(now time.Time) uint64 {
	halves := now.Sub(e.updated) / decayHalfLife
	if halves > 0 {
		if halves >= 64 {
			e.balance = 0
		} else {
			e.balance >>= uint(halves)
		}
		e.updated = e.updated.Add(halves * decayHalfLife)
	}
	return e.balance
}

type manager struct {
	log     *logger.L
	entries *cache.Cache
}

// New - create a ledger with the default fee schedule
func New(log *logger.L) Manager {
	return &manager{
		log:     log,
		entries: cache.New(entryExpiration, entryCleanupInterval),
	}
}

func (m *manager) lookup(host string) *entry {
	for {
		if item, ok := m.entries.Get(host); ok {
			e := item.(*entry)
			m.entries.Set(host, e, cache.DefaultExpiration)
			return e
		}
		e := &entry{updated: time.Now()}
		// Add fails when a concurrent request stored the host first
		if nil == m.entries.Add(host, e, cache.DefaultExpiration) {
			return e
		}
	}
}

func (m *manager) NewInbound(host string) Consumer {
	return &consumer{
		log:   m.log,
		host:  host,
		entry: m.lookup(host),
	}
}

func (m *manager) NewUnlimited(host string) Consumer {
	return &consumer{
		log:       m.log,
		host:      host,
		unlimited: true,
	}
}

type consumer struct {
	log       *logger.L
	host      string
	entry     *entry
	unlimited bool
}

func (c *consumer) ShouldDisconnect() bool {
	if c.unlimited {
		return false
	}

	c.entry.Lock()
	balance := c.entry.decayed(time.Now())
	c.entry.Unlock()

	if balance > dropThreshold {
		c.log.Warnf("endpoint: %s over limit: %d", c.host, balance)
		return true
	}
	return false
}

func (c *consumer) Charge(charge Charge) {
	if c.unlimited {
		return
	}

	c.entry.Lock()
	c.entry.decayed(time.Now())
	c.entry.balance += uint64(charge)
	balance := c.entry.balance
	c.entry.Unlock()

	c.log.Tracef("endpoint: %s charged: %d balance: %d", c.host, charge, balance)
}
