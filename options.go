// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loopselect

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// resolverOptions holds configuration options for Resolver creation.
type resolverOptions struct {
	registry *Registry
	logger   *logiface.Logger[logiface.Event]
	open     PluginOpener
}

// Option configures a [Resolver] instance.
type Option interface {
	applyResolver(*resolverOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyResolverFunc func(*resolverOptions) error
}

func (o *optionImpl) applyResolver(opts *resolverOptions) error {
	return o.applyResolverFunc(opts)
}

// WithRegistry sets the registry consulted for built-in engines, replacing
// [DefaultRegistry]. Injecting a purpose-built registry keeps resolution
// deterministic under test, independent of the host platform.
func WithRegistry(registry *Registry) Option {
	return &optionImpl{func(opts *resolverOptions) error {
		if registry == nil {
			return errors.New("loopselect: nil registry")
		}
		opts.registry = registry
		return nil
	}}
}

// WithLogger attaches a structured logger. The resolver records selection
// decisions at debug level; it never logs errors, which always propagate to
// the caller. A nil logger disables logging (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *resolverOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithPluginOpener sets how custom "path:symbol" specifiers are opened,
// replacing the platform default (the standard library plugin package where
// supported).
func WithPluginOpener(open PluginOpener) Option {
	return &optionImpl{func(opts *resolverOptions) error {
		if open == nil {
			return errors.New("loopselect: nil plugin opener")
		}
		opts.open = open
		return nil
	}}
}

// resolveOptions applies Option instances to resolverOptions.
func resolveOptions(opts []Option) (*resolverOptions, error) {
	cfg := &resolverOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyResolver(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
