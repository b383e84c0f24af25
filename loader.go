package loopselect

import "fmt"

// Plugin is the symbol table of a loaded loop plugin. It mirrors the lookup
// surface of the standard library's plugin.Plugin so that fakes can stand in
// for it under test.
type Plugin interface {
	// Lookup returns the exported symbol by name.
	Lookup(symbol string) (any, error)
}

// PluginOpener opens the plugin at path. The default opener uses the
// standard library plugin package on platforms that support dynamic loading,
// and fails with [ErrPluginLoad] elsewhere.
type PluginOpener func(path string) (Plugin, error)

// loadCustom resolves a custom specifier into a factory by opening the named
// plugin and looking up the named symbol.
//
// The loaded code runs with full process privileges. That is a trust
// boundary the operator accepts by configuring a custom specifier, not a
// defect. The open call may block on file-system work; it is not retried or
// time-bounded here.
func (r *Resolver) loadCustom(spec Specifier) (Factory, error) {
	raw := spec.String()

	p, err := r.open(spec.Path)
	if err != nil {
		return nil, newResolveError(ErrPluginLoad, raw, err)
	}

	sym, err := p.Lookup(spec.Symbol)
	if err != nil {
		return nil, newResolveError(ErrSymbolLoad, raw, err)
	}

	// plugin.Lookup yields the value for functions and a pointer for
	// package-level variables; accept both, named or unnamed.
	switch f := sym.(type) {
	case Factory:
		if f != nil {
			return f, nil
		}
	case *Factory:
		if f != nil && *f != nil {
			return *f, nil
		}
	case func() (Loop, error):
		if f != nil {
			return f, nil
		}
	case *func() (Loop, error):
		if f != nil && *f != nil {
			return *f, nil
		}
	}
	return nil, newResolveError(ErrSymbolLoad, raw,
		fmt.Errorf("symbol %q is not a loop factory", spec.Symbol))
}
