//go:build !(linux || darwin)

package loopselect

import "errors"

// openPlugin is the default opener on platforms without dynamic loading.
// Custom loops must be registered at compile time via [Registry.Register]
// instead.
func openPlugin(path string) (Plugin, error) {
	return nil, errors.New("dynamic loop loading is not supported on this platform")
}
