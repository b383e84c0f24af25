package loopselect

import (
	"runtime"
	"testing"
)

// TestDetectFacts verifies fact gathering for the current process.
func TestDetectFacts(t *testing.T) {
	facts := DetectFacts(4)

	if facts.Workers != 4 {
		t.Errorf("Workers = %d, want 4", facts.Workers)
	}

	wantOS := OSPosix
	if runtime.GOOS == "windows" {
		wantOS = OSWindows
	}
	if facts.OS != wantOS {
		t.Errorf("OS = %v, want %v", facts.OS, wantOS)
	}

	wantRuntime := RuntimeStandard
	if runtime.Compiler != "gc" {
		wantRuntime = RuntimeAlternative
	}
	if facts.Runtime != wantRuntime {
		t.Errorf("Runtime = %v, want %v", facts.Runtime, wantRuntime)
	}
}

// TestDetectFacts_ClampsWorkers verifies worker counts below 1 are clamped.
func TestDetectFacts_ClampsWorkers(t *testing.T) {
	for _, workers := range []int{0, -3} {
		if facts := DetectFacts(workers); facts.Workers != 1 {
			t.Errorf("DetectFacts(%d).Workers = %d, want 1", workers, facts.Workers)
		}
	}
}

// TestOSFamily_String tests OS family names.
func TestOSFamily_String(t *testing.T) {
	if got := OSPosix.String(); got != "posix" {
		t.Errorf("OSPosix.String() = %q", got)
	}
	if got := OSWindows.String(); got != "windows" {
		t.Errorf("OSWindows.String() = %q", got)
	}
	if got := OSFamily(99).String(); got != "unknown" {
		t.Errorf("OSFamily(99).String() = %q", got)
	}
}

// TestRuntimeKind_String tests runtime kind names.
func TestRuntimeKind_String(t *testing.T) {
	if got := RuntimeStandard.String(); got != "standard" {
		t.Errorf("RuntimeStandard.String() = %q", got)
	}
	if got := RuntimeAlternative.String(); got != "alternative" {
		t.Errorf("RuntimeAlternative.String() = %q", got)
	}
	if got := RuntimeKind(99).String(); got != "unknown" {
		t.Errorf("RuntimeKind(99).String() = %q", got)
	}
}
