//go:build !(linux || darwin)

package nativeloop

import "context"

// Task is a unit of work executed on the loop goroutine.
type Task func()

// Available reports whether the native reactor can run on this system.
func Available() error { return ErrUnsupported }

// Loop is unavailable on this platform; see [Available].
type Loop struct{}

// New fails with ErrUnsupported.
func New() (*Loop, error) { return nil, ErrUnsupported }

func (l *Loop) Run(ctx context.Context) error { return ErrUnsupported }
func (l *Loop) Shutdown(ctx context.Context) error { return ErrUnsupported }
func (l *Loop) Submit(task Task) error { return ErrUnsupported }
func (l *Loop) RegisterRead(fd int, cb func()) error { return ErrUnsupported }
func (l *Loop) UnregisterRead(fd int) error { return ErrUnsupported }
