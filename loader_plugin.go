//go:build linux || darwin

package loopselect

import "plugin"

// pluginTable adapts *plugin.Plugin to the Plugin interface.
type pluginTable struct {
	p *plugin.Plugin
}

func (t pluginTable) Lookup(symbol string) (any, error) {
	return t.p.Lookup(symbol)
}

// openPlugin is the default opener on platforms with dynamic loading.
func openPlugin(path string) (Plugin, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return pluginTable{p: p}, nil
}
