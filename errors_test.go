package loopselect

import (
	"errors"
	"io"
	"testing"
)

// TestResolveError_Error tests the Error() method of ResolveError.
func TestResolveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ResolveError
		want string
	}{
		{
			name: "kind and specifier",
			err:  &ResolveError{Kind: ErrUnknownBuiltin, Specifier: "bogus"},
			want: `loopselect: unknown built-in loop: "bogus"`,
		},
		{
			name: "kind specifier and cause",
			err:  &ResolveError{Kind: ErrPluginLoad, Specifier: "p.so:F", Cause: io.EOF},
			want: `loopselect: cannot load loop plugin: "p.so:F": EOF`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestResolveError_ErrorsIs tests errors.Is matching against both the kind
// sentinel and the underlying cause.
func TestResolveError_ErrorsIs(t *testing.T) {
	err := newResolveError(ErrPluginLoad, "p.so:F", io.ErrUnexpectedEOF)

	if !errors.Is(err, ErrPluginLoad) {
		t.Error("errors.Is(err, ErrPluginLoad) = false, want true")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, io.ErrUnexpectedEOF) = false, want true")
	}
	if errors.Is(err, ErrSymbolLoad) {
		t.Error("errors.Is(err, ErrSymbolLoad) = true, want false")
	}
}

// TestResolveError_ErrorsAs tests structured field access via errors.As.
func TestResolveError_ErrorsAs(t *testing.T) {
	err := newResolveError(ErrLoopUnavailable, "native", nil)

	var re *ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if re.Kind != ErrLoopUnavailable {
		t.Errorf("Kind = %v, want ErrLoopUnavailable", re.Kind)
	}
	if re.Specifier != "native" {
		t.Errorf("Specifier = %q, want %q", re.Specifier, "native")
	}
	if re.Cause != nil {
		t.Errorf("Cause = %v, want nil", re.Cause)
	}
}

// TestResolveError_Unwrap tests multi-error unwrapping.
func TestResolveError_Unwrap(t *testing.T) {
	withCause := &ResolveError{Kind: ErrSymbolLoad, Specifier: "p.so:F", Cause: io.EOF}
	if got := withCause.Unwrap(); len(got) != 2 || got[0] != ErrSymbolLoad || got[1] != io.EOF {
		t.Errorf("Unwrap() = %v, want [ErrSymbolLoad io.EOF]", got)
	}

	noCause := &ResolveError{Kind: ErrMalformedSpecifier, Specifier: ""}
	if got := noCause.Unwrap(); len(got) != 1 || got[0] != ErrMalformedSpecifier {
		t.Errorf("Unwrap() = %v, want [ErrMalformedSpecifier]", got)
	}
}
