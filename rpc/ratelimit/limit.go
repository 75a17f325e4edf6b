// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket limiting helpers
package ratelimit

import (
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/tidechain/tidechaind/fault"
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - limiting for a counted request
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	// invalid count gets limited as a single request
	if count <= 0 || count > maximumCount {
		r := limiter.Reserve()
		if !r.OK() {
			return fault.RateLimiting
		}
		time.Sleep(r.Delay())

		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}

const (
	perHostExpiration      = 10 * time.Minute
	perHostCleanupInterval = 20 * time.Minute
)

// PerHost - independent token buckets keyed by remote host
//
// used to slow down repeated authorization failures from a single
// source without delaying everyone else
type PerHost struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

// NewPerHost - create an empty per-host limiter set
func NewPerHost(limit rate.Limit, burst int) *PerHost {
	return &PerHost{
		limit:    limit,
		burst:    burst,
		limiters: cache.New(perHostExpiration, perHostCleanupInterval),
	}
}

// Allow - non-blocking check of the host's bucket
func (p *PerHost) Allow(host string) bool {
	return p.limiter(host).Allow()
}

// Delay - take one token and report how long the caller must wait
func (p *PerHost) Delay(host string) time.Duration {
	r := p.limiter(host).Reserve()
	if !r.OK() {
		return time.Second
	}
	return r.Delay()
}

func (p *PerHost) limiter(host string) *rate.Limiter {
	for {
		if item, ok := p.limiters.Get(host); ok {
			return item.(*rate.Limiter)
		}
		limiter := rate.NewLimiter(p.limit, p.burst)
		// Add fails when a concurrent request stored the host first
		if nil == p.limiters.Add(host, limiter, cache.DefaultExpiration) {
			return limiter
		}
	}
}
