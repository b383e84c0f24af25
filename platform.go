package loopselect

import "runtime"

// OSFamily classifies the host operating system for loop selection. Engines
// care about the I/O model (readiness vs completion), not the distribution,
// so only the posix/windows split is tracked.
type OSFamily uint8

const (
	// OSPosix covers Linux, the BSDs, macOS, and other unix-like systems.
	OSPosix OSFamily = iota
	// OSWindows covers Windows.
	OSWindows
)

// String returns the string representation of the OS family.
func (o OSFamily) String() string {
	switch o {
	case OSPosix:
		return "posix"
	case OSWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// RuntimeKind distinguishes the standard Go toolchain from alternative
// compilers (gccgo, tinygo) that lack support for plugin loading and for
// some engine syscall surfaces.
type RuntimeKind uint8

const (
	// RuntimeStandard is the reference gc toolchain.
	RuntimeStandard RuntimeKind = iota
	// RuntimeAlternative is any other compiler.
	RuntimeAlternative
)

// String returns the string representation of the runtime kind.
func (r RuntimeKind) String() string {
	switch r {
	case RuntimeStandard:
		return "standard"
	case RuntimeAlternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// Facts is an immutable snapshot of the host characteristics relevant to
// loop selection, captured once at process start by the bootstrapper.
type Facts struct {
	OS      OSFamily
	Runtime RuntimeKind
	// Workers is the worker process count for the current run, >= 1.
	Workers int
}

// DetectFacts gathers platform facts for the current process. A workers
// value below 1 is clamped to 1.
func DetectFacts(workers int) Facts {
	if workers < 1 {
		workers = 1
	}
	facts := Facts{Workers: workers}
	if runtime.GOOS == "windows" {
		facts.OS = OSWindows
	}
	if runtime.Compiler != "gc" {
		facts.Runtime = RuntimeAlternative
	}
	return facts
}
