// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package nativeloop implements a thin reactor directly over the kernel
// poller: epoll on Linux, kqueue on macOS. Submitted tasks and read-readiness
// callbacks execute on the goroutine that called [Loop.Run], woken through an
// eventfd (Linux) or a self-pipe (macOS).
//
// The package is posix-only. On other platforms every operation fails with
// [ErrUnsupported], and [Available] reports the same; callers are expected to
// gate on Available rather than build tags. Available also performs a
// memoized runtime probe (creating and closing a poller instance), so a
// kernel without the required facility is handled identically to an
// unsupported platform.
package nativeloop
