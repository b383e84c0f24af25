// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package loopselect resolves a user-supplied event-loop specifier into a
// concrete loop factory for an asynchronous server process.
//
// A specifier is a single configuration string: the keyword "auto", the name
// of a built-in engine, or a "path:symbol" reference to a factory exported by
// a Go plugin. Resolution happens exactly once per process, before any
// asynchronous work begins, and hands back a [Factory] that the bootstrapper
// invokes to obtain the loop used for the remainder of the process lifetime.
// This package only selects a loop implementation; it never runs one.
//
// # Built-in engines
//
// Three engines are registered in [DefaultRegistry]:
//
//   - "poll" ([BuiltinPoll]): the baseline engine, backed by
//     github.com/joeycumines/go-eventloop and its native poller (epoll on
//     Linux, kqueue on macOS, IOCP on Windows). Always available.
//   - "chan" ([BuiltinChan]): a channel-scheduled loop with no OS poller,
//     the lowest per-call overhead for single-worker processes. Always
//     available.
//   - "native" ([BuiltinNative]): a thin epoll/kqueue reactor. Available on
//     posix systems built with the standard toolchain, subject to a runtime
//     probe.
//
// # Automatic selection
//
// For "auto" the policy prefers a high-performance engine appropriate to the
// platform, then falls back by I/O model: on Windows, multi-worker runs get
// the completion-based "poll" engine while single-worker runs get "chan";
// everywhere else the baseline "poll" engine is used. An explicitly named
// engine is never substituted: if it is not usable on the current platform,
// resolution fails with [ErrLoopUnavailable].
//
// # Usage
//
//	resolver, err := loopselect.NewResolver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := resolver.ResolveString(cfg.Loop, loopselect.DetectFacts(cfg.Workers))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loop, err := res.Factory()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loop.Shutdown(context.Background())
//	loop.Run(ctx)
//
// Resolution is synchronous and single-threaded; the returned [Factory] may
// be invoked any number of times, each call producing a fresh, independent
// loop instance.
package loopselect
