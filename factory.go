// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loopselect

import "context"

// Loop is the contract every resolved event loop satisfies. The resolver
// never calls these methods; the bootstrapper owns the loop lifecycle after
// resolution, typically after process/worker topology is finalized.
type Loop interface {
	// Run drives the loop until Shutdown is called or ctx is cancelled.
	// It blocks on the calling goroutine.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the loop, blocking until the loop
	// terminates or ctx expires.
	Shutdown(ctx context.Context) error
}

// Factory constructs a new event loop. Each invocation returns a fresh,
// independent instance; a Factory has no side effects until called.
//
// Factories resolved from custom specifiers are taken on faith: whatever the
// loaded code returns is handed to the bootstrapper without further
// validation, and any failure at use time surfaces there.
type Factory func() (Loop, error)
