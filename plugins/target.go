// Package plugins defines the contract between a host and a target module
// and the hosts that drive a target, either in process or as an external
// plugin binary.
package plugins

import (
	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/errors"
)

// Names of the callbacks, used in logs and in DumpError failures
const (
	CallbackStartDesign = "start_design"
	CallbackEndDesign   = "end_design"
	CallbackNetBufz     = "net_bufz"
	CallbackNetConst    = "net_const"
	CallbackNetEvent    = "net_event"
	CallbackNetLogic    = "net_logic"
	CallbackNetProbe    = "net_probe"
	CallbackNetSignal   = "net_signal"
	CallbackProcess     = "process"
)

// Target is implemented by a target module. The host calls StartDesign
// once, then the element callbacks in design order, then EndDesign once.
//
// Every handle is only valid for the duration of the call that receives it.
// A target must not keep a handle or call back into the host after it
// returns.
type Target interface {
	// StartDesign prepares the output of the target. An error aborts the
	// run, no other callback is invoked.
	StartDesign(d design.Design) error

	// EndDesign finalizes the output.
	EndDesign(d design.Design) error

	NetBufz(name string, net design.Bufz) error
	NetConst(name string, net design.Const) error
	NetEvent(name string, net design.Event) error
	NetLogic(name string, net design.Logic) error
	NetProbe(name string, net design.Probe) error
	NetSignal(name string, net design.Signal) error
	Process(proc design.Process) error
}

// Status codes returned to hosts that expect an integer result
const (
	StatusOK            = 0
	StatusConfiguration = -1
	StatusIO            = -2
	StatusState         = -3
)

// Status converts a callback error to its integer status. Unsupported
// constructs share the status of configuration errors.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}

	switch errors.KindOf(err) {
	case errors.KindIO:
		return StatusIO
	case errors.KindState:
		return StatusState
	}

	return StatusConfiguration
}
