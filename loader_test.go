package loopselect

import (
	"errors"
	"fmt"
	"testing"
)

// fakePlugin is an in-memory symbol table.
type fakePlugin struct {
	symbols map[string]any
}

func (p *fakePlugin) Lookup(symbol string) (any, error) {
	sym, ok := p.symbols[symbol]
	if !ok {
		return nil, fmt.Errorf("symbol %q not found", symbol)
	}
	return sym, nil
}

// fakeOpener serves plugins from a path-keyed map.
func fakeOpener(plugins map[string]*fakePlugin) PluginOpener {
	return func(path string) (Plugin, error) {
		p, ok := plugins[path]
		if !ok {
			return nil, fmt.Errorf("no such plugin %q", path)
		}
		return p, nil
	}
}

func customLoopFactory() (Loop, error) {
	return &fakeLoop{engine: "custom"}, nil
}

// TestResolve_CustomSpecifier tests the dynamic loading happy path and that
// it bypasses availability entirely.
func TestResolve_CustomSpecifier(t *testing.T) {
	var namedFactory Factory = func() (Loop, error) {
		return &fakeLoop{engine: "custom"}, nil
	}
	plugins := map[string]*fakePlugin{
		"ext/turbo.so": {symbols: map[string]any{
			"NewLoop":     customLoopFactory, // func() (Loop, error)
			"FactoryVar":  &namedFactory,     // *Factory, as plugin.Lookup yields for vars
			"NamedType":   namedFactory,      // Factory
			"WrongType":   42,
			"NilFactory":  (*Factory)(nil),
			"FactoryFunc": func() (Loop, error) { return nil, nil },
		}},
	}
	// Empty registry: custom resolution must not consult availability.
	resolver := newTestResolver(t,
		WithRegistry(NewRegistry()),
		WithPluginOpener(fakeOpener(plugins)),
	)
	facts := Facts{OS: OSPosix, Runtime: RuntimeStandard, Workers: 1}

	for _, symbol := range []string{"NewLoop", "FactoryVar", "NamedType", "FactoryFunc"} {
		raw := "ext/turbo.so:" + symbol
		res, err := resolver.ResolveString(raw, facts)
		if err != nil {
			t.Fatalf("ResolveString(%q) failed: %v", raw, err)
		}
		if res.Name != raw {
			t.Errorf("Name = %q, want %q", res.Name, raw)
		}
		if _, err := res.Factory(); err != nil {
			t.Errorf("factory from %q failed: %v", raw, err)
		}
	}
}

// TestResolve_CustomFailures tests the structured failure modes of the
// dynamic loader.
func TestResolve_CustomFailures(t *testing.T) {
	plugins := map[string]*fakePlugin{
		"ext/turbo.so": {symbols: map[string]any{
			"WrongType":  42,
			"NilFactory": (*Factory)(nil),
		}},
	}
	resolver := newTestResolver(t, WithPluginOpener(fakeOpener(plugins)))
	facts := Facts{OS: OSPosix, Runtime: RuntimeStandard, Workers: 1}

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"missing plugin", "ext/missing.so:NewLoop", ErrPluginLoad},
		{"missing symbol", "ext/turbo.so:Nope", ErrSymbolLoad},
		{"wrong symbol type", "ext/turbo.so:WrongType", ErrSymbolLoad},
		{"nil factory variable", "ext/turbo.so:NilFactory", ErrSymbolLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.ResolveString(tt.raw, facts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var re *ResolveError
			if !errors.As(err, &re) {
				t.Fatalf("error is not a *ResolveError: %v", err)
			}
			if re.Specifier != tt.raw {
				t.Errorf("Specifier = %q, want %q", re.Specifier, tt.raw)
			}
		})
	}
}

// TestResolve_CustomCausePreserved tests that the underlying open failure
// is reachable through the error chain.
func TestResolve_CustomCausePreserved(t *testing.T) {
	cause := errors.New("dlopen: permission denied")
	resolver := newTestResolver(t, WithPluginOpener(func(path string) (Plugin, error) {
		return nil, cause
	}))

	_, err := resolver.ResolveString("p.so:F", Facts{OS: OSPosix, Workers: 1})
	if !errors.Is(err, ErrPluginLoad) {
		t.Fatalf("error = %v, want ErrPluginLoad", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("underlying cause not preserved: %v", err)
	}
}

// TestResolve_CustomDefaultOpener tests the platform opener against a path
// that cannot exist. Both the plugin-backed and stub openers must surface
// ErrPluginLoad.
func TestResolve_CustomDefaultOpener(t *testing.T) {
	resolver := newTestResolver(t)
	_, err := resolver.ResolveString("/nonexistent/loop-plugin.so:NewLoop", DetectFacts(1))
	if !errors.Is(err, ErrPluginLoad) {
		t.Errorf("error = %v, want ErrPluginLoad", err)
	}
}
