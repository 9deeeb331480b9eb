package plugins

import (
	"sort"

	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/netlist"
)

// Handles can not cross a process boundary, before a callback is sent to an
// external plugin the host copies everything reachable from the handle into
// a snapshot. On the plugin side the snapshot implements the same design
// interfaces and lives only as long as the RPC call.

// DesignSnapshot is a copy of a design.Design
type DesignSnapshot struct {
	Root  string
	Flags map[string]string
}

func SnapshotDesign(d design.Design) DesignSnapshot {
	s := DesignSnapshot{Root: d.RootName(), Flags: map[string]string{}}
	for _, n := range d.FlagNames() {
		if v, ok := d.Flag(n); ok {
			s.Flags[n] = v
		}
	}

	return s
}

func (d *DesignSnapshot) RootName() string {
	return d.Root
}

func (d *DesignSnapshot) Flag(name string) (string, bool) {
	v, ok := d.Flags[name]
	return v, ok
}

func (d *DesignSnapshot) FlagNames() []string {
	names := make([]string, 0, len(d.Flags))
	for k := range d.Flags {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

func nexusName(n design.Nexus) string {
	if n == nil {
		return ""
	}

	return n.Name()
}

func snapshotBufz(name string, n design.Bufz) netlist.Bufz {
	return netlist.Bufz{Name: name, In: nexusName(n.Input()), Out: nexusName(n.Output())}
}

func snapshotConst(name string, n design.Const) netlist.Const {
	return netlist.Const{Name: name, Value: n.Bits()}
}

func snapshotEvent(name string, n design.Event) netlist.Event {
	return netlist.Event{Name: name, On: n.Edge()}
}

func snapshotProbe(name string, n design.Probe) netlist.Probe {
	return netlist.Probe{Name: name, EventName: n.Event()}
}

func snapshotSignal(name string, n design.Signal) netlist.Signal {
	return netlist.Signal{Name: name, Width: n.Pins()}
}

func snapshotLogic(name string, n design.Logic) netlist.Logic {
	pins := make([]string, n.Pins())
	for i := range pins {
		pins[i] = nexusName(n.Pin(uint(i)))
	}

	return netlist.Logic{Name: name, Gate: n.Type(), Nexus: pins}
}

// ProcessSnapshot is a copy of a design.Process and its statement tree
type ProcessSnapshot struct {
	Mode design.ProcessType
	Body *StatementSnapshot
}

func SnapshotProcess(p design.Process) ProcessSnapshot {
	return ProcessSnapshot{Mode: p.Type(), Body: snapshotOptional(p.Stmt())}
}

func (p *ProcessSnapshot) Type() design.ProcessType { return p.Mode }
func (p *ProcessSnapshot) Stmt() design.Statement   { return p.Body.Statement() }

// StatementSnapshot is a copy of a statement tree
type StatementSnapshot struct {
	Tag design.StatementType
	// Missing marks a nil statement inside a block, gob can not encode nil
	// slice elements
	Missing bool
	// Opaque marks a handle that did not implement the variant of its tag
	Opaque bool

	Body  []*StatementSnapshot
	Then  *StatementSnapshot
	Else  *StatementSnapshot
	Child *StatementSnapshot
	Value uint64
	Name  string
}

// SnapshotStatement copies the tree rooted at s, a nil s is recorded as
// missing
func SnapshotStatement(s design.Statement) *StatementSnapshot {
	if s == nil {
		return &StatementSnapshot{Missing: true}
	}

	ss := &StatementSnapshot{Tag: s.Type()}

	switch s.Type() {
	case design.StatementBlock:
		b, ok := s.(design.Block)
		if !ok {
			ss.Opaque = true
			break
		}

		ss.Body = make([]*StatementSnapshot, b.Count())
		for i := range ss.Body {
			ss.Body[i] = SnapshotStatement(b.Stmt(uint(i)))
		}

	case design.StatementCondit:
		c, ok := s.(design.Condit)
		if !ok {
			ss.Opaque = true
			break
		}

		ss.Then = snapshotOptional(c.True())
		ss.Else = snapshotOptional(c.False())

	case design.StatementDelay:
		d, ok := s.(design.Delay)
		if !ok {
			ss.Opaque = true
			break
		}

		ss.Value = d.DelayValue()
		ss.Child = snapshotOptional(d.Sub())

	case design.StatementSTask:
		t, ok := s.(design.SysTask)
		if !ok {
			ss.Opaque = true
			break
		}

		ss.Name = t.TaskName()

	case design.StatementWait, design.StatementWhile:
		w, ok := s.(interface{ Sub() design.Statement })
		if !ok {
			ss.Opaque = true
			break
		}

		ss.Child = snapshotOptional(w.Sub())
	}

	return ss
}

func snapshotOptional(s design.Statement) *StatementSnapshot {
	if s == nil {
		return nil
	}

	return SnapshotStatement(s)
}

// Statement returns the snapshot as a design.Statement, nil for a nil or
// missing snapshot
func (s *StatementSnapshot) Statement() design.Statement {
	if s == nil || s.Missing {
		return nil
	}

	if s.Opaque {
		return opaqueStatement(s.Tag)
	}

	return s
}

func (s *StatementSnapshot) Type() design.StatementType { return s.Tag }
func (s *StatementSnapshot) Count() uint                { return uint(len(s.Body)) }
func (s *StatementSnapshot) True() design.Statement     { return s.Then.Statement() }
func (s *StatementSnapshot) False() design.Statement    { return s.Else.Statement() }
func (s *StatementSnapshot) DelayValue() uint64         { return s.Value }
func (s *StatementSnapshot) Sub() design.Statement      { return s.Child.Statement() }
func (s *StatementSnapshot) TaskName() string           { return s.Name }

func (s *StatementSnapshot) Stmt(idx uint) design.Statement {
	if idx >= uint(len(s.Body)) {
		return nil
	}

	return s.Body[idx].Statement()
}

// opaqueStatement only reports its tag
type opaqueStatement design.StatementType

func (o opaqueStatement) Type() design.StatementType { return design.StatementType(o) }

var (
	_ design.Design  = (*DesignSnapshot)(nil)
	_ design.Process = (*ProcessSnapshot)(nil)
	_ design.Block   = (*StatementSnapshot)(nil)
	_ design.Condit  = (*StatementSnapshot)(nil)
	_ design.Delay   = (*StatementSnapshot)(nil)
	_ design.SysTask = (*StatementSnapshot)(nil)
	_ design.Wait    = (*StatementSnapshot)(nil)
	_ design.While   = (*StatementSnapshot)(nil)
)
