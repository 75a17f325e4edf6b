// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/tidechain/tidechaind/fault"
	"github.com/tidechain/tidechaind/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 100)
	err := ratelimit.Limit(limiter)
	assert.Nil(t, err, "limit error")
}

func TestLimitNInvalidCount(t *testing.T) {
	limiter := rate.NewLimiter(100, 100)

	err := ratelimit.LimitN(limiter, 0, 10)
	assert.Equal(t, fault.InvalidCount, err, "wrong error for zero count")

	err = ratelimit.LimitN(limiter, 11, 10)
	assert.Equal(t, fault.InvalidCount, err, "wrong error for oversize count")

	err = ratelimit.LimitN(limiter, 5, 10)
	assert.Nil(t, err, "unexpected error")
}

func TestPerHost(t *testing.T) {
	p := ratelimit.NewPerHost(1, 2)

	// burst of 2 then refused
	assert.True(t, p.Allow("192.0.2.1"), "first refused")
	assert.True(t, p.Allow("192.0.2.1"), "second refused")
	assert.False(t, p.Allow("192.0.2.1"), "burst not limited")

	// another host has its own bucket
	assert.True(t, p.Allow("192.0.2.2"), "other host refused")
}

func TestPerHostConcurrentFirstContact(t *testing.T) {
	p := ratelimit.NewPerHost(1, 3)

	// simultaneous first contacts must share one bucket so the
	// burst is granted only once
	allowed := int32(0)
	wg := sync.WaitGroup{}
	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.Allow("192.0.2.3") {
				atomic.AddInt32(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&allowed), "extra burst granted")
}
