package loopselect

import (
	"errors"
	"fmt"
)

// Resolution failure kinds. Every error returned by this package matches
// exactly one of these via [errors.Is]. All are terminal for the resolution
// attempt; nothing is retried or silently substituted.
var (
	// ErrMalformedSpecifier indicates an empty or syntactically invalid
	// specifier, such as a "path:symbol" form with an empty half.
	ErrMalformedSpecifier = errors.New("loopselect: malformed loop specifier")

	// ErrUnknownBuiltin indicates a specifier that is neither a registered
	// built-in name nor a custom "path:symbol" reference.
	ErrUnknownBuiltin = errors.New("loopselect: unknown built-in loop")

	// ErrLoopUnavailable indicates an explicitly requested built-in that is
	// not usable on this platform or runtime.
	ErrLoopUnavailable = errors.New("loopselect: loop not available on this platform")

	// ErrPluginLoad indicates the plugin named by a custom specifier could
	// not be opened.
	ErrPluginLoad = errors.New("loopselect: cannot load loop plugin")

	// ErrSymbolLoad indicates the plugin opened but the named symbol is
	// missing or is not a loop factory.
	ErrSymbolLoad = errors.New("loopselect: loop factory symbol not found")
)

// ResolveError describes a failed resolution attempt: the failure kind (one
// of the package sentinels), the offending specifier as supplied by the
// user, and the underlying cause where one exists (plugin load failures).
type ResolveError struct {
	Kind      error
	Cause     error
	Specifier string
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", e.Kind, e.Specifier, e.Cause)
	}
	return fmt.Sprintf("%v: %q", e.Kind, e.Specifier)
}

// Unwrap returns the kind and cause for multi-error unwrapping, so both
// errors.Is(err, ErrPluginLoad) and errors.Is(err, underlyingCause) match.
func (e *ResolveError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func newResolveError(kind error, specifier string, cause error) error {
	return &ResolveError{Kind: kind, Specifier: specifier, Cause: cause}
}
