// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - maintain a group of background processes
// sharing one shutdown signal
package background

// the shutdown and completed channels for one background process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for the started group
type T struct {
	s []shutdown
}

// Process - type signature for a background process
//
// the process must exit when the shutdown channel is closed and
// close done on the way out
type Process func(args interface{}, shutdown <-chan struct{}, done chan<- struct{})

// Processes - list of processes to start as a group
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := new(T)
	register.s = make([]shutdown, len(processes))

	for i, p := range processes {
		stop := make(chan struct{})
		done := make(chan struct{})
		register.s[i].shutdown = stop
		register.s[i].finished = done
		go p(args, stop, done)
	}
	return register
}

// Stop - stop the group and wait for all processes to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}

	for _, s := range t.s {
		<-s.finished
	}
}
