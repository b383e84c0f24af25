//go:build linux || darwin

package nativeloop

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Task is a unit of work executed on the loop goroutine.
type Task func()

var probe struct {
	once sync.Once
	err  error
}

// Available reports whether the native reactor can run on this system.
// The probe creates and closes a kernel poller instance; the result is
// memoized for the process lifetime, since kernel capabilities do not
// change mid-run.
func Available() error {
	probe.once.Do(func() {
		probe.err = probeKernel()
	})
	return probe.err
}

// Loop is a thin reactor over the kernel poller.
type Loop struct {
	fds     map[int]func()
	pending []Task
	done    chan struct{}

	poller    poller
	wakeRead  int
	wakeWrite int

	mu        sync.Mutex
	doneOnce  sync.Once
	closeOnce sync.Once
	running   atomic.Bool
	closing   atomic.Bool
}

// New constructs a stopped loop ready to Run.
func New() (*Loop, error) {
	if err := Available(); err != nil {
		return nil, err
	}

	l := &Loop{
		fds:  make(map[int]func()),
		done: make(chan struct{}),
	}
	if err := l.poller.init(); err != nil {
		return nil, err
	}

	r, w, err := newWakeFD()
	if err != nil {
		_ = l.poller.close()
		return nil, err
	}
	l.wakeRead, l.wakeWrite = r, w

	if err := l.poller.registerRead(r); err != nil {
		_ = l.poller.close()
		closeWakeFD(r, w)
		return nil, err
	}
	return l, nil
}

// Run drives the reactor until [Loop.Shutdown] is called or ctx is
// cancelled. It blocks on the calling goroutine.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.markDone()
	defer l.closeFDs()

	// Cancellation must interrupt a blocking poll.
	stop := context.AfterFunc(ctx, func() { _ = l.wake() })
	defer stop()

	ready := make([]int, 0, 128)
	for {
		l.runPending()

		if l.closing.Load() && !l.hasPending() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		timeout := -1
		if l.hasPending() {
			timeout = 0
		}

		var err error
		ready, err = l.poller.wait(timeout, ready[:0])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}

		for _, fd := range ready {
			if fd == l.wakeRead {
				drainWakeFD(l.wakeRead)
				continue
			}
			l.mu.Lock()
			cb := l.fds[fd]
			l.mu.Unlock()
			if cb != nil {
				l.safeExecute(cb)
			}
		}
	}
}

// Submit schedules task for execution on the loop goroutine. Safe to call
// from any goroutine, including before Run. Tasks submitted concurrently
// with Shutdown may or may not run.
func (l *Loop) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if l.closing.Load() {
		return ErrLoopClosed
	}
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()
	return l.wake()
}

// RegisterRead registers fd for read-readiness dispatch. The callback runs
// on the loop goroutine.
//
// UnregisterRead does not guarantee immediate cessation of in-flight
// callbacks: dispatch copies the callback outside the lock. Close fd only
// once its callbacks have completed.
func (l *Loop) RegisterRead(fd int, cb func()) error {
	if fd < 0 {
		return ErrFDOutOfRange
	}
	if cb == nil {
		return ErrNilTask
	}
	if l.closing.Load() {
		return ErrLoopClosed
	}

	l.mu.Lock()
	if _, dup := l.fds[fd]; dup {
		l.mu.Unlock()
		return ErrFDRegistered
	}
	l.fds[fd] = cb
	l.mu.Unlock()

	if err := l.poller.registerRead(fd); err != nil {
		l.mu.Lock()
		delete(l.fds, fd)
		l.mu.Unlock()
		return err
	}
	return nil
}

// UnregisterRead removes fd from readiness dispatch.
func (l *Loop) UnregisterRead(fd int) error {
	l.mu.Lock()
	if _, ok := l.fds[fd]; !ok {
		l.mu.Unlock()
		return ErrFDNotRegistered
	}
	delete(l.fds, fd)
	l.mu.Unlock()
	return l.poller.unregister(fd)
}

// Shutdown stops the loop after draining previously submitted tasks,
// blocking until the loop goroutine exits or ctx expires. Shutdown of a
// loop that never ran releases its kernel resources immediately.
func (l *Loop) Shutdown(ctx context.Context) error {
	l.closing.Store(true)

	if !l.running.Load() {
		l.closeFDs()
		l.markDone()
		return nil
	}

	_ = l.wake()
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

func (l *Loop) closeFDs() {
	l.closeOnce.Do(func() {
		_ = l.poller.close()
		closeWakeFD(l.wakeRead, l.wakeWrite)
	})
}

func (l *Loop) hasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending) > 0
}

// runPending executes the tasks queued at the start of the tick. Tasks
// queued by those tasks run next tick, preserving submission fairness
// against I/O dispatch.
func (l *Loop) runPending() {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, task := range batch {
		l.safeExecute(task)
	}
}

// safeExecute contains panics so a misbehaving task cannot take down the
// loop goroutine.
func (l *Loop) safeExecute(task Task) {
	defer func() {
		_ = recover()
	}()
	task()
}

func (l *Loop) wake() error {
	return notifyWakeFD(l.wakeWrite)
}

func closeWakeFD(r, w int) {
	_ = unix.Close(r)
	if w != r {
		_ = unix.Close(w)
	}
}
