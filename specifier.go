package loopselect

import "strings"

// Auto is the specifier keyword requesting automatic selection.
const Auto = "auto"

// SpecifierKind identifies which variant of a parsed specifier is active.
type SpecifierKind uint8

const (
	// SpecAuto requests automatic engine selection.
	SpecAuto SpecifierKind = iota
	// SpecBuiltin names a registered built-in engine.
	SpecBuiltin
	// SpecCustom references a factory exported by a Go plugin.
	SpecCustom
)

// String returns the string representation of the kind.
func (k SpecifierKind) String() string {
	switch k {
	case SpecAuto:
		return "auto"
	case SpecBuiltin:
		return "builtin"
	case SpecCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Specifier is the parsed, typed form of a loop specifier string. Exactly
// one variant is active, indicated by Kind.
type Specifier struct {
	// Name is the built-in engine identifier (Kind == SpecBuiltin).
	Name string
	// Path is the plugin file path (Kind == SpecCustom).
	Path string
	// Symbol is the factory symbol within the plugin (Kind == SpecCustom).
	Symbol string
	Kind   SpecifierKind
}

// String reassembles the specifier in its user-facing form.
func (s Specifier) String() string {
	switch s.Kind {
	case SpecAuto:
		return Auto
	case SpecBuiltin:
		return s.Name
	case SpecCustom:
		return s.Path + ":" + s.Symbol
	default:
		return ""
	}
}

// parseSpecifier classifies raw against the given built-in name predicate.
// Parsing is total: every input maps to a variant or to a structured error.
// Custom specifiers split on the FIRST ':' so symbol names may not contain
// one, but paths never need escaping.
func parseSpecifier(raw string, isBuiltin func(string) bool) (Specifier, error) {
	if raw == "" {
		return Specifier{}, newResolveError(ErrMalformedSpecifier, raw, nil)
	}
	if raw == Auto {
		return Specifier{Kind: SpecAuto}, nil
	}
	if isBuiltin(raw) {
		return Specifier{Kind: SpecBuiltin, Name: raw}, nil
	}
	if path, symbol, ok := strings.Cut(raw, ":"); ok {
		if path == "" || symbol == "" {
			return Specifier{}, newResolveError(ErrMalformedSpecifier, raw, nil)
		}
		return Specifier{Kind: SpecCustom, Path: path, Symbol: symbol}, nil
	}
	return Specifier{}, newResolveError(ErrUnknownBuiltin, raw, nil)
}
