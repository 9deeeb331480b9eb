package netlist

import "github.com/jumppad-labs/hdltarget/design"

// Process is an initial or always block with its statement tree
type Process struct {
	Mode design.ProcessType `json:"type"`
	Body *Statement         `json:"body"`
}

func (p *Process) Kind() ElementKind        { return KindProcess }
func (p *Process) ElementName() string      { return p.Mode.String() }
func (p *Process) Type() design.ProcessType { return p.Mode }
func (p *Process) Stmt() design.Statement   { return stmtOrNil(p.Body) }

// Statement is a node of a statement tree. Only the fields of the node's
// tag are meaningful:
//
//	block             Body
//	condit            Then, Else
//	delay             Value, Child
//	delayx, wait,
//	while             Child
//	stask             Name
//	wait, trigger     Event
type Statement struct {
	Tag   design.StatementType `json:"type"`
	Body  []*Statement         `json:"body,omitempty"`
	Then  *Statement           `json:"then,omitempty"`
	Else  *Statement           `json:"else,omitempty"`
	Value uint64               `json:"value,omitempty"`
	Name  string               `json:"name,omitempty"`
	Event string               `json:"event,omitempty"`
	Child *Statement           `json:"child,omitempty"`
}

func (s *Statement) Type() design.StatementType { return s.Tag }
func (s *Statement) Count() uint                { return uint(len(s.Body)) }
func (s *Statement) True() design.Statement     { return stmtOrNil(s.Then) }
func (s *Statement) False() design.Statement    { return stmtOrNil(s.Else) }
func (s *Statement) DelayValue() uint64         { return s.Value }
func (s *Statement) Sub() design.Statement      { return stmtOrNil(s.Child) }
func (s *Statement) TaskName() string           { return s.Name }

func (s *Statement) Stmt(idx uint) design.Statement {
	if idx >= uint(len(s.Body)) {
		return nil
	}

	return stmtOrNil(s.Body[idx])
}

// a nil *Statement must not be returned inside a non nil interface
func stmtOrNil(s *Statement) design.Statement {
	if s == nil {
		return nil
	}

	return s
}

// Assign returns an assignment statement
func Assign() *Statement {
	return &Statement{Tag: design.StatementAssign}
}

// Noop returns an empty statement
func Noop() *Statement {
	return &Statement{Tag: design.StatementNoop}
}

// Block returns a begin/end group of the given statements
func Block(stmts ...*Statement) *Statement {
	return &Statement{Tag: design.StatementBlock, Body: stmts}
}

// If returns a conditional, either branch may be nil
func If(then, els *Statement) *Statement {
	return &Statement{Tag: design.StatementCondit, Then: then, Else: els}
}

// Delay returns a #value statement
func Delay(value uint64, sub *Statement) *Statement {
	return &Statement{Tag: design.StatementDelay, Value: value, Child: sub}
}

// SysTask returns a system task call
func SysTask(name string) *Statement {
	return &Statement{Tag: design.StatementSTask, Name: name}
}

// Wait returns an event control statement
func Wait(event string, sub *Statement) *Statement {
	return &Statement{Tag: design.StatementWait, Event: event, Child: sub}
}

// While returns a while loop
func While(sub *Statement) *Statement {
	return &Statement{Tag: design.StatementWhile, Child: sub}
}

var (
	_ design.Process = (*Process)(nil)
	_ design.Block   = (*Statement)(nil)
	_ design.Condit  = (*Statement)(nil)
	_ design.Delay   = (*Statement)(nil)
	_ design.SysTask = (*Statement)(nil)
	_ design.Wait    = (*Statement)(nil)
	_ design.While   = (*Statement)(nil)
)
