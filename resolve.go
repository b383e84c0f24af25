// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loopselect

import (
	"github.com/joeycumines/logiface"
)

// Resolution is the outcome of a successful resolution: the selected engine
// name (or the "path:symbol" form for custom specifiers) and its factory.
// The resolver retains no reference to either after handing them off.
type Resolution struct {
	Factory Factory
	Name    string
}

// Resolver maps loop specifiers to factories. A zero-configured Resolver
// uses [DefaultRegistry] and the platform plugin opener.
type Resolver struct {
	registry *Registry
	logger   *logiface.Logger[logiface.Event]
	open     PluginOpener
}

// NewResolver constructs a Resolver.
func NewResolver(opts ...Option) (*Resolver, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &Resolver{
		registry: cfg.registry,
		logger:   cfg.logger,
		open:     cfg.open,
	}
	if r.registry == nil {
		r.registry = DefaultRegistry
	}
	if r.open == nil {
		r.open = openPlugin
	}
	return r, nil
}

// Parse classifies raw into a [Specifier] against this resolver's registry.
// It is a pure function of the string and the set of registered names.
func (r *Resolver) Parse(raw string) (Specifier, error) {
	return parseSpecifier(raw, func(name string) bool {
		_, ok := r.registry.Lookup(name)
		return ok
	})
}

// ResolveString parses raw and resolves it in one step.
func (r *Resolver) ResolveString(raw string, facts Facts) (Resolution, error) {
	spec, err := r.Parse(raw)
	if err != nil {
		return Resolution{}, err
	}
	return r.Resolve(spec, facts)
}

// Resolve maps a specifier and platform facts to a concrete loop factory.
//
// Automatic selection prioritizes peak throughput and falls back by the
// platform's I/O model. An explicitly named engine is never substituted: an
// explicit request signals intent, and masking a misconfiguration by falling
// back would make production deployments unpredictable. Custom specifiers
// bypass the availability set entirely; the caller vouches for them.
func (r *Resolver) Resolve(spec Specifier, facts Facts) (Resolution, error) {
	switch spec.Kind {
	case SpecAuto:
		res, err := r.resolveAuto(facts)
		if err != nil {
			return Resolution{}, err
		}
		r.logger.Debug().
			Str("specifier", Auto).
			Str("loop", res.Name).
			Int("workers", facts.Workers).
			Log("selected event loop")
		return res, nil

	case SpecBuiltin:
		if !r.registry.Availability(facts).Has(spec.Name) {
			return Resolution{}, newResolveError(ErrLoopUnavailable, spec.Name, nil)
		}
		b, ok := r.registry.Lookup(spec.Name)
		if !ok {
			return Resolution{}, newResolveError(ErrUnknownBuiltin, spec.Name, nil)
		}
		r.logger.Debug().
			Str("specifier", spec.Name).
			Str("loop", b.Name).
			Log("selected event loop")
		return Resolution{Name: b.Name, Factory: b.New(facts)}, nil

	case SpecCustom:
		factory, err := r.loadCustom(spec)
		if err != nil {
			return Resolution{}, err
		}
		name := spec.String()
		r.logger.Debug().
			Str("specifier", name).
			Str("loop", name).
			Log("loaded custom event loop")
		return Resolution{Name: name, Factory: factory}, nil

	default:
		return Resolution{}, newResolveError(ErrMalformedSpecifier, spec.String(), nil)
	}
}

// resolveAuto implements the automatic selection priority:
//
//  1. a platform-appropriate high-performance engine, if available
//     (registration order breaks ties);
//  2. otherwise on Windows, the completion-based baseline for multi-worker
//     runs, or the channel-scheduled baseline for its lower per-call
//     overhead in the single-worker case;
//  3. otherwise the baseline poll engine.
func (r *Resolver) resolveAuto(facts Facts) (Resolution, error) {
	avail := r.registry.Availability(facts)

	for _, name := range r.registry.Names() {
		b, ok := r.registry.Lookup(name)
		if ok && b.Perf && avail.Has(name) {
			return Resolution{Name: b.Name, Factory: b.New(facts)}, nil
		}
	}

	var prefs []string
	switch {
	case facts.OS == OSWindows && facts.Workers > 1:
		prefs = []string{BuiltinPoll, BuiltinChan}
	case facts.OS == OSWindows:
		prefs = []string{BuiltinChan, BuiltinPoll}
	default:
		prefs = []string{BuiltinPoll, BuiltinChan}
	}
	// Custom registries may omit the preferred baselines; any available
	// engine beats failing an "auto" request.
	prefs = append(prefs, r.registry.Names()...)

	for _, name := range prefs {
		if !avail.Has(name) {
			continue
		}
		if b, ok := r.registry.Lookup(name); ok {
			return Resolution{Name: b.Name, Factory: b.New(facts)}, nil
		}
	}
	return Resolution{}, newResolveError(ErrLoopUnavailable, Auto, nil)
}
