package plugins

import "github.com/jumppad-labs/hdltarget/netlist"

// PluginHost drives a target over a design. It abstracts whether the target
// runs in process or as an external plugin.
type PluginHost interface {
	// Run visits the whole design. A failed StartDesign is returned as is
	// (wrapped), failures of the other callbacks are collected in an
	// *errors.DumpError once every element has been visited.
	Run(des *netlist.Design) error

	// Stop shuts down the plugin host and cleans up resources
	Stop()
}
