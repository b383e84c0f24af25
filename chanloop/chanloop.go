// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package chanloop implements a minimal channel-scheduled event loop.
//
// Tasks submitted from any goroutine execute in FIFO order on the goroutine
// that called [Loop.Run]. There is no OS poller: scheduling is a single
// channel receive, which keeps per-task overhead at its floor. That makes
// this engine a good fit for single-worker processes that do not fan I/O
// readiness out across processes.
package chanloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Standard errors.
var (
	ErrLoopClosed  = errors.New("chanloop: loop closed")
	ErrLoopRunning = errors.New("chanloop: loop already running")
	ErrNilTask     = errors.New("chanloop: nil task")
)

// ingressCapacity bounds the task queue; Submit blocks once it is full
// until the loop catches up.
const ingressCapacity = 1024

// Task is a unit of work executed on the loop goroutine.
type Task func()

// Loop is a channel-driven event loop.
type Loop struct {
	tasks    chan Task
	done     chan struct{}
	doneOnce sync.Once
	stopOnce sync.Once
	running  atomic.Bool
	closing  atomic.Bool
}

// New constructs a stopped loop ready to Run.
func New() (*Loop, error) {
	return &Loop{
		tasks: make(chan Task, ingressCapacity),
		done:  make(chan struct{}),
	}, nil
}

// Run executes tasks until [Loop.Shutdown] is called or ctx is cancelled.
// It blocks on the calling goroutine; a second Run returns ErrLoopRunning,
// and Run after Shutdown returns ErrLoopClosed.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.markDone()

	for {
		select {
		case <-l.done:
			return ErrLoopClosed
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			if task == nil {
				// Queue-end sentinel placed by Shutdown.
				return nil
			}
			l.execute(task)
		}
	}
}

// Submit schedules task for execution on the loop goroutine, blocking while
// the queue is full. Tasks submitted concurrently with Shutdown may or may
// not run; tasks submitted after Shutdown returns never do.
func (l *Loop) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if l.closing.Load() {
		return ErrLoopClosed
	}
	select {
	case l.tasks <- task:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// Shutdown stops the loop after draining previously submitted tasks,
// blocking until the loop goroutine exits or ctx expires. Shutdown of a
// loop that never ran terminates it immediately.
func (l *Loop) Shutdown(ctx context.Context) error {
	l.closing.Store(true)

	if !l.running.Load() {
		l.markDone()
		return nil
	}

	l.stopOnce.Do(func() {
		// The nil sentinel travels the same queue as tasks, so everything
		// ahead of it drains first.
		select {
		case l.tasks <- nil:
		case <-l.done:
		}
	})

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) markDone() {
	l.doneOnce.Do(func() { close(l.done) })
}

// execute runs a task, containing panics so a misbehaving task cannot take
// down the loop goroutine.
func (l *Loop) execute(task Task) {
	defer func() {
		_ = recover()
	}()
	task()
}
