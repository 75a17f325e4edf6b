// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/rpc/fixtures"
	"github.com/tidechain/tidechaind/rpc/resource"
)

func TestInboundConsumerAccumulates(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := resource.New(logger.New(fixtures.LogCategory))

	c := m.NewInbound("192.0.2.1")
	assert.False(t, c.ShouldDisconnect(), "fresh endpoint refused")

	// burn through the budget
	for i := 0; i < 100; i += 1 {
		c.Charge(resource.FeeReferenceRPC)
	}
	assert.True(t, c.ShouldDisconnect(), "exhausted endpoint not refused")
}

func TestInboundConsumerSharedByHost(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := resource.New(logger.New(fixtures.LogCategory))

	first := m.NewInbound("192.0.2.7")
	for i := 0; i < 100; i += 1 {
		first.Charge(resource.FeeReferenceRPC)
	}

	// a later consumer for the same host sees the same ledger
	second := m.NewInbound("192.0.2.7")
	assert.True(t, second.ShouldDisconnect(), "balance not shared by host")

	other := m.NewInbound("192.0.2.8")
	assert.False(t, other.ShouldDisconnect(), "unrelated host refused")
}

func TestInboundConsumerConcurrentFirstContact(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := resource.New(logger.New(fixtures.LogCategory))

	// all simultaneous first contacts must land on one ledger
	// entry so no charge is lost
	wg := sync.WaitGroup{}
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.NewInbound("192.0.2.9").Charge(resource.FeeReferenceRPC)
		}()
	}
	wg.Wait()

	c := m.NewInbound("192.0.2.9")
	assert.True(t, c.ShouldDisconnect(), "concurrent charges lost")
}

func TestUnlimitedConsumer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := resource.New(logger.New(fixtures.LogCategory))

	c := m.NewUnlimited("192.0.2.2")
	for i := 0; i < 1000; i += 1 {
		c.Charge(resource.FeeReferenceRPC)
	}
	assert.False(t, c.ShouldDisconnect(), "unlimited endpoint refused")
}
