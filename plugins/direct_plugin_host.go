package plugins

import (
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/hdltarget/errors"
	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/netlist"
)

// DirectPluginHost calls a Target directly, it is used for targets compiled
// into the host and, over an RPC client, for external plugins.
type DirectPluginHost struct {
	target Target
	logger logger.Logger
}

// NewDirectPluginHost creates a host for the given target, l may be nil
func NewDirectPluginHost(l logger.Logger, target Target) *DirectPluginHost {
	if l == nil {
		l = logger.NopLogger{}
	}

	return &DirectPluginHost{
		target: target,
		logger: l,
	}
}

// Run calls StartDesign, one callback per element in declaration order,
// then EndDesign. Calls are strictly sequential.
func (h *DirectPluginHost) Run(des *netlist.Design) error {
	h.logger.Info("starting design", "design", des.RootName(), "elements", len(des.Elements))

	if err := h.target.StartDesign(des); err != nil {
		h.logger.Error("target failed to start", "design", des.RootName(), "status", Status(err), "error", err)
		return errwrap.Wrapf("unable to start design: {{err}}", err)
	}

	failures := errors.NewDumpError(des.RootName())

	for _, e := range des.Elements {
		cb := callbackFor(e.Kind())

		if err := Dispatch(h.target, e); err != nil {
			h.logger.Warn("callback failed", "callback", cb, "element", e.ElementName(), "status", Status(err), "error", err)
			failures.Append(cb, e.ElementName(), err)
		}
	}

	if err := h.target.EndDesign(des); err != nil {
		h.logger.Error("target failed to end design", "design", des.RootName(), "error", err)
		failures.Append(CallbackEndDesign, "", err)
	}

	if len(failures.Failures) > 0 {
		return failures
	}

	h.logger.Info("design complete", "design", des.RootName())
	return nil
}

// Stop is a no-op for direct targets as there's nothing to clean up
func (h *DirectPluginHost) Stop() {}

// Dispatch invokes the callback of target matching the kind of e
func Dispatch(target Target, e netlist.Element) error {
	switch el := e.(type) {
	case *netlist.Bufz:
		return target.NetBufz(el.Name, el)
	case *netlist.Const:
		return target.NetConst(el.Name, el)
	case *netlist.Event:
		return target.NetEvent(el.Name, el)
	case *netlist.Logic:
		return target.NetLogic(el.Name, el)
	case *netlist.Probe:
		return target.NetProbe(el.Name, el)
	case *netlist.Signal:
		return target.NetSignal(el.Name, el)
	case *netlist.Process:
		return target.Process(el)
	}

	return fmt.Errorf("no callback for element %s of type %T", e.ElementName(), e)
}

func callbackFor(k netlist.ElementKind) string {
	switch k {
	case netlist.KindBufz:
		return CallbackNetBufz
	case netlist.KindConst:
		return CallbackNetConst
	case netlist.KindEvent:
		return CallbackNetEvent
	case netlist.KindLogic:
		return CallbackNetLogic
	case netlist.KindProbe:
		return CallbackNetProbe
	case netlist.KindSignal:
		return CallbackNetSignal
	case netlist.KindProcess:
		return CallbackProcess
	}

	return k.String()
}

// Ensure DirectPluginHost implements PluginHost interface
var _ PluginHost = (*DirectPluginHost)(nil)
