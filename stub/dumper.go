package stub

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/errors"
	"github.com/jumppad-labs/hdltarget/logger"
)

// OutputFlag is the design option holding the path of the output file
const OutputFlag = "-o"

const (
	elementIndent = 6
	processIndent = 8
)

type state int

const (
	stateUninitialized state = iota
	stateActive
	stateTerminal
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateActive:
		return "active"
	}

	return "terminal"
}

// Dumper writes a textual trace of every callback it receives. A Dumper
// handles a single design, it is opened by StartDesign and closed by
// EndDesign.
type Dumper struct {
	logger logger.Logger
	state  state
	path   string
	file   *os.File
	out    *sink
}

// New creates a Dumper, l may be nil
func New(l logger.Logger) *Dumper {
	if l == nil {
		l = logger.NopLogger{}
	}

	return &Dumper{logger: l}
}

// StartDesign opens the file named by the "-o" option and writes the header.
// A missing option returns a configuration error and a file that can not be
// opened an IO error, in both cases no file is written and the Dumper stays
// uninitialized.
func (d *Dumper) StartDesign(des design.Design) error {
	if d.state != stateUninitialized {
		return errors.NewStateError("start_design", d.state.String())
	}

	path, ok := des.Flag(OutputFlag)
	if !ok || path == "" {
		d.logger.Error("output file not specified", "design", des.RootName(), "option", OutputFlag)
		return errors.NewConfigurationError(OutputFlag)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		d.logger.Error("unable to open output file", "path", path, "error", err)
		return errors.NewIOError(path, err)
	}

	d.path = path
	d.file = f
	d.out = newSink(f)
	d.state = stateActive

	d.logger.Info("design started", "design", des.RootName(), "output", path)

	fmt.Fprintf(d.out, "module %s;\n", des.RootName())
	return d.writeError()
}

// EndDesign writes the trailer then flushes and closes the output file. The
// file is closed even when the flush fails, the Dumper can not be reused.
func (d *Dumper) EndDesign(des design.Design) error {
	if d.state != stateActive {
		return errors.NewStateError("end_design", d.state.String())
	}

	d.state = stateTerminal

	fmt.Fprintf(d.out, "endmodule\n")
	err := d.out.Flush()

	if cerr := d.file.Close(); cerr != nil {
		err = stderrors.Join(err, cerr)
	}

	d.file = nil

	if err != nil {
		d.logger.Error("unable to finalize output file", "path", d.path, "error", err)
		return errors.NewIOError(d.path, err)
	}

	d.logger.Info("design finished", "design", des.RootName(), "output", d.path)
	return nil
}

// NetBufz writes the BUFZ line for the net
func (d *Dumper) NetBufz(name string, net design.Bufz) error {
	return d.emit("net_bufz", name, "STUB: %s: BUFZ\n", name)
}

// NetConst writes the constant line for the net
func (d *Dumper) NetConst(name string, net design.Const) error {
	return d.emit("net_const", name, "STUB: %s: constant\n", name)
}

// NetEvent writes the event line for the net
func (d *Dumper) NetEvent(name string, net design.Event) error {
	return d.emit("net_event", name, "STUB: %s: event\n", name)
}

// NetProbe writes the probe line for the net
func (d *Dumper) NetProbe(name string, net design.Probe) error {
	return d.emit("net_probe", name, "STUB: %s: probe\n", name)
}

// NetSignal writes the signal line with the pin count of the net
func (d *Dumper) NetSignal(name string, net design.Signal) error {
	return d.emit("net_signal", name, "STUB: %s: signal [%d]\n", name, net.Pins())
}

// NetLogic writes the gate with its pins in pin order. Gates other than and
// and or are reported as unsupported, the diagnostic line is still written.
func (d *Dumper) NetLogic(name string, net design.Logic) error {
	if err := d.active("net_logic"); err != nil {
		return err
	}

	d.logger.Debug("net_logic", "element", name, "type", net.Type())

	switch net.Type() {
	case design.LogicAnd, design.LogicOr:
	default:
		fmt.Fprintf(d.out, "STUB: %s: unsupported gate\n", name)
		d.logger.Warn("unsupported gate", "element", name, "type", net.Type())

		if err := d.writeError(); err != nil {
			return err
		}

		return errors.NewUnsupportedError(name, fmt.Sprintf("gate type %s", net.Type()))
	}

	pins := make([]string, net.Pins())
	for i := range pins {
		pins[i] = "?"
		if nex := net.Pin(uint(i)); nex != nil {
			pins[i] = nex.Name()
		}
	}

	fmt.Fprintf(d.out, "%*s%s %s (%s);\n", elementIndent, "", net.Type(), name, strings.Join(pins, ", "))
	return d.writeError()
}

// Process writes the process keyword followed by its statement tree.
// Unknown process types and statement types are written as diagnostic lines
// and reported as unsupported once the whole tree has been written.
func (d *Dumper) Process(proc design.Process) error {
	if err := d.active("process"); err != nil {
		return err
	}

	d.logger.Debug("process", "type", proc.Type())

	var errs []error

	switch proc.Type() {
	case design.ProcessInitial, design.ProcessAlways:
		fmt.Fprintf(d.out, "%*s%s\n", elementIndent, "", proc.Type())
	default:
		fmt.Fprintf(d.out, "STUB: unknown process type (%d)\n", uint(proc.Type()))
		errs = append(errs, errors.NewUnsupportedError("", fmt.Sprintf("process type (%d)", uint(proc.Type()))))
	}

	if err := RenderStatement(d.out, proc.Stmt(), processIndent); err != nil {
		errs = append(errs, err)
	}

	if err := d.writeError(); err != nil {
		return err
	}

	if len(errs) > 0 {
		err := stderrors.Join(errs...)
		d.logger.Warn("process contains unsupported constructs", "error", err)
		return err
	}

	return nil
}

func (d *Dumper) emit(callback, name, format string, args ...interface{}) error {
	if err := d.active(callback); err != nil {
		return err
	}

	d.logger.Debug(callback, "element", name)

	fmt.Fprintf(d.out, format, args...)
	return d.writeError()
}

func (d *Dumper) active(callback string) error {
	if d.state != stateActive {
		d.logger.Error("callback out of order", "callback", callback, "state", d.state)
		return errors.NewStateError(callback, d.state.String())
	}

	return nil
}

func (d *Dumper) writeError() error {
	if d.out.err != nil {
		return errors.NewIOError(d.path, d.out.err)
	}

	return nil
}

// sink remembers the first write error so callbacks can report it
type sink struct {
	w   *bufio.Writer
	err error
}

func newSink(f *os.File) *sink {
	return &sink{w: bufio.NewWriter(f)}
}

func (s *sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}

	return n, err
}

func (s *sink) Flush() error {
	if s.err != nil {
		return s.err
	}

	s.err = s.w.Flush()
	return s.err
}
