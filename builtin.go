// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loopselect

import (
	eventloop "github.com/joeycumines/go-eventloop"
	"github.com/joeycumines/go-loopselect/chanloop"
	"github.com/joeycumines/go-loopselect/nativeloop"
)

// Built-in engine names.
const (
	// BuiltinPoll is the baseline engine, backed by go-eventloop's native
	// poller: epoll on Linux, kqueue on macOS, IOCP on Windows. On Windows
	// the completion-based model keeps it usable across multiple worker
	// processes.
	BuiltinPoll = "poll"

	// BuiltinChan is the channel-scheduled engine. No OS poller, lowest
	// per-call overhead; suited to single-worker processes.
	BuiltinChan = "chan"

	// BuiltinNative is the thin native reactor (epoll/kqueue directly),
	// posix only, standard toolchain only.
	BuiltinNative = "native"
)

// DefaultRegistry holds the engines compiled into this module. Deployments
// may register additional engines before resolution; registration after the
// first resolution is a misuse (facts, and therefore availability, are fixed
// for the process lifetime).
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(Builtin{
		Name: BuiltinNative,
		Perf: true,
		Supported: func(facts Facts) bool {
			return facts.OS == OSPosix && facts.Runtime == RuntimeStandard
		},
		Probe: nativeloop.Available,
		New: func(Facts) Factory {
			return func() (Loop, error) {
				loop, err := nativeloop.New()
				if err != nil {
					return nil, err
				}
				return loop, nil
			}
		},
	})

	DefaultRegistry.Register(Builtin{
		Name: BuiltinPoll,
		New: func(Facts) Factory {
			return func() (Loop, error) {
				loop, err := eventloop.New()
				if err != nil {
					return nil, err
				}
				return loop, nil
			}
		},
	})

	DefaultRegistry.Register(Builtin{
		Name: BuiltinChan,
		New: func(Facts) Factory {
			return func() (Loop, error) {
				loop, err := chanloop.New()
				if err != nil {
					return nil, err
				}
				return loop, nil
			}
		},
	})
}
