package plugins

import (
	stderrors "errors"
	"net/rpc"

	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-plugin"
	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/errors"
	"github.com/jumppad-labs/hdltarget/netlist"
)

// HandshakeConfig is shared by hosts and plugin binaries, a binary started
// without the cookie exits with a message instead of serving.
var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "HDLTARGET_PLUGIN",
	MagicCookieValue: "target-module",
}

// PluginName is the name the target is dispensed under
const PluginName = "target"

// PluginMap returns the plugin set for a target, impl is only needed on the
// plugin side
func PluginMap(impl Target) plugin.PluginSet {
	return plugin.PluginSet{
		PluginName: &TargetPlugin{Impl: impl},
	}
}

// TargetPlugin implements plugin.Plugin for the net/rpc protocol
type TargetPlugin struct {
	Impl Target
}

func (p *TargetPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &RPCServer{Impl: p.Impl}, nil
}

func (p *TargetPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RPCClient{client: c}, nil
}

// WireError carries a callback error across the RPC boundary
type WireError struct {
	Kind    errors.Kind
	Element string
	Message string
	Cause   string
}

func newWireError(err error) *WireError {
	if err == nil {
		return nil
	}

	if te, ok := err.(*errors.TargetError); ok {
		we := &WireError{Kind: te.Kind, Element: te.Element, Message: te.Message}
		if te.Err != nil {
			we.Cause = te.Err.Error()
		}

		return we
	}

	return &WireError{Kind: errors.KindOf(err), Message: err.Error()}
}

func (w *WireError) err() error {
	if w == nil {
		return nil
	}

	if w.Kind == "" {
		return stderrors.New(w.Message)
	}

	te := &errors.TargetError{Kind: w.Kind, Element: w.Element, Message: w.Message}
	if w.Cause != "" {
		te.Err = stderrors.New(w.Cause)
	}

	return te
}

// CallReply is the reply of every callback
type CallReply struct {
	Err *WireError
}

type DesignArgs struct {
	Design DesignSnapshot
}

type BufzArgs struct {
	Name string
	Net  netlist.Bufz
}

type ConstArgs struct {
	Name string
	Net  netlist.Const
}

type EventArgs struct {
	Name string
	Net  netlist.Event
}

type LogicArgs struct {
	Name string
	Net  netlist.Logic
}

type ProbeArgs struct {
	Name string
	Net  netlist.Probe
}

type SignalArgs struct {
	Name string
	Net  netlist.Signal
}

type ProcessArgs struct {
	Process ProcessSnapshot
}

// RPCClient is the host side of an external target, it implements Target
// by sending snapshots of the handles to the plugin
type RPCClient struct {
	client *rpc.Client
}

func (c *RPCClient) call(method string, args interface{}) error {
	var reply CallReply
	if err := c.client.Call("Plugin."+method, args, &reply); err != nil {
		return errwrap.Wrapf("plugin call "+method+" failed: {{err}}", err)
	}

	return reply.Err.err()
}

func (c *RPCClient) StartDesign(d design.Design) error {
	return c.call("StartDesign", DesignArgs{Design: SnapshotDesign(d)})
}

func (c *RPCClient) EndDesign(d design.Design) error {
	return c.call("EndDesign", DesignArgs{Design: SnapshotDesign(d)})
}

func (c *RPCClient) NetBufz(name string, net design.Bufz) error {
	return c.call("NetBufz", BufzArgs{Name: name, Net: snapshotBufz(name, net)})
}

func (c *RPCClient) NetConst(name string, net design.Const) error {
	return c.call("NetConst", ConstArgs{Name: name, Net: snapshotConst(name, net)})
}

func (c *RPCClient) NetEvent(name string, net design.Event) error {
	return c.call("NetEvent", EventArgs{Name: name, Net: snapshotEvent(name, net)})
}

func (c *RPCClient) NetLogic(name string, net design.Logic) error {
	return c.call("NetLogic", LogicArgs{Name: name, Net: snapshotLogic(name, net)})
}

func (c *RPCClient) NetProbe(name string, net design.Probe) error {
	return c.call("NetProbe", ProbeArgs{Name: name, Net: snapshotProbe(name, net)})
}

func (c *RPCClient) NetSignal(name string, net design.Signal) error {
	return c.call("NetSignal", SignalArgs{Name: name, Net: snapshotSignal(name, net)})
}

func (c *RPCClient) Process(proc design.Process) error {
	return c.call("Process", ProcessArgs{Process: SnapshotProcess(proc)})
}

// RPCServer is the plugin side of an external target
type RPCServer struct {
	Impl Target
}

func (s *RPCServer) StartDesign(args DesignArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.StartDesign(&args.Design))
	return nil
}

func (s *RPCServer) EndDesign(args DesignArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.EndDesign(&args.Design))
	return nil
}

func (s *RPCServer) NetBufz(args BufzArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetBufz(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) NetConst(args ConstArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetConst(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) NetEvent(args EventArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetEvent(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) NetLogic(args LogicArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetLogic(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) NetProbe(args ProbeArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetProbe(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) NetSignal(args SignalArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.NetSignal(args.Name, &args.Net))
	return nil
}

func (s *RPCServer) Process(args ProcessArgs, reply *CallReply) error {
	reply.Err = newWireError(s.Impl.Process(&args.Process))
	return nil
}

var (
	_ Target        = (*RPCClient)(nil)
	_ plugin.Plugin = (*TargetPlugin)(nil)
)
