// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package jobqueue - run request processing off the accept path
//
// The accept side detaches a session and posts the remaining work
// here; a fixed pool of workers runs each job to completion so the
// network side is never blocked on ledger or database work.
package jobqueue

import (
	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/background"
	"github.com/tidechain/tidechaind/fault"
)

// Class - scheduling class of a posted job
type Class int

// all job classes
const (
	ClassClient Class = iota // client RPC request
	ClassAdmin               // administrative request
)

// String - class name for logging
func (c Class) String() string {
	switch c {
	case ClassClient:
		return "client"
	case ClassAdmin:
		return "admin"
	default:
		return "*unknown*"
	}
}

// Handle - identity of the job a unit of work runs under
type Handle interface {
	Class() Class
	Name() string
}

type task struct {
	class Class
	name  string
	run   func(Handle)
}

func (t *task) Class() Class { return t.class }
func (t *task) Name() string { return t.name }

// Queue - a worker pool consuming posted jobs
type Queue struct {
	log       *logger.L
	tasks     chan *task
	processes *background.T
}

// New - start a queue with a fixed number of workers
func New(log *logger.L, workers int, backlog int) *Queue {
	q := &Queue{
		log:   log,
		tasks: make(chan *task, backlog),
	}

	processes := make(background.Processes, workers)
	for i := range processes {
		processes[i] = q.worker
	}
	q.processes = background.Start(processes, nil)

	log.Infof("started: %d workers backlog: %d", workers, backlog)

	return q
}

// Post - enqueue a unit of work
//
// never blocks: a full backlog sheds the job
func (q *Queue) Post(class Class, name string, run func(Handle)) error {
	t := &task{
		class: class,
		name:  name,
		run:   run,
	}
	select {
	case q.tasks <- t:
		return nil
	default:
		q.log.Warnf("backlog full; shedding: %s/%s", class, name)
		return fault.QueueIsFull
	}
}

// Stop - drain nothing, just stop all workers
func (q *Queue) Stop() {
	q.processes.Stop()
	q.log.Info("stopped")
}

func (q *Queue) worker(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-shutdown:
			return
		case t := <-q.tasks:
			q.log.Tracef("run: %s/%s", t.class, t.name)
			t.run(t)
		}
	}
}
