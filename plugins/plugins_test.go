package plugins_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/netlist"
	"github.com/jumppad-labs/hdltarget/stub"
	"github.com/stretchr/testify/require"
)

// call is a single callback seen by recordingTarget
type call struct {
	Callback string
	Name     string
}

// recordingTarget records every callback and returns the configured errors
type recordingTarget struct {
	calls []call
	errs  map[string]error
}

func (r *recordingTarget) record(cb, name string) error {
	r.calls = append(r.calls, call{cb, name})
	return r.errs[cb+":"+name]
}

func (r *recordingTarget) StartDesign(d design.Design) error {
	return r.record("start_design", d.RootName())
}

func (r *recordingTarget) EndDesign(d design.Design) error {
	return r.record("end_design", d.RootName())
}

func (r *recordingTarget) NetBufz(name string, _ design.Bufz) error {
	return r.record("net_bufz", name)
}

func (r *recordingTarget) NetConst(name string, _ design.Const) error {
	return r.record("net_const", name)
}

func (r *recordingTarget) NetEvent(name string, _ design.Event) error {
	return r.record("net_event", name)
}

func (r *recordingTarget) NetLogic(name string, _ design.Logic) error {
	return r.record("net_logic", name)
}

func (r *recordingTarget) NetProbe(name string, _ design.Probe) error {
	return r.record("net_probe", name)
}

func (r *recordingTarget) NetSignal(name string, _ design.Signal) error {
	return r.record("net_signal", name)
}

func (r *recordingTarget) Process(p design.Process) error {
	return r.record("process", p.Type().String())
}

// setupDesign returns a design with one element of every kind writing to a
// file in a temp folder
func setupDesign(t *testing.T) (*netlist.Design, string) {
	out := filepath.Join(t.TempDir(), "top.txt")

	des := netlist.NewDesign("top")
	des.SetFlag(stub.OutputFlag, out)
	des.Add(
		&netlist.Signal{Name: "a", Width: 1},
		&netlist.Const{Name: "c0", Value: "01"},
		&netlist.Bufz{Name: "bz", In: "a", Out: "y"},
		&netlist.Event{Name: "ev", On: "posedge"},
		&netlist.Probe{Name: "pr", EventName: "ev"},
		&netlist.Logic{Name: "g1", Gate: design.LogicAnd, Nexus: []string{"a", "b", "y"}},
		&netlist.Process{
			Mode: design.ProcessInitial,
			Body: netlist.Block(
				netlist.Delay(10, netlist.Noop()),
				netlist.If(netlist.SysTask("$display"), netlist.Assign()),
				nil,
				netlist.Wait("ev", netlist.While(netlist.Assign())),
			),
		},
	)

	return des, out
}

var expectedOutput = []string{
	"module top;",
	"STUB: a: signal [1]",
	"STUB: c0: constant",
	"STUB: bz: BUFZ",
	"STUB: ev: event",
	"STUB: pr: probe",
	"      and g1 (a, b, y);",
	"      initial",
	"        begin",
	"            #10",
	"              /* noop */;",
	"            if (...)",
	"                $display(...);",
	"            else",
	"                ? = ?;",
	"            ;",
	"            @(...)",
	"              while (<?>)",
	"                ? = ?;",
	"        end",
	"endmodule",
}

func readLines(t *testing.T, path string) []string {
	d, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimSuffix(string(d), "\n"), "\n")
}
