// Package design defines the read-only handles a host passes to a target
// module while it walks an elaborated design.
//
// Handles are owned by the host. A target may only read through the accessor
// methods and must not keep a handle once the callback that received it has
// returned.
package design

import "fmt"

// LogicType identifies the primitive of a logic gate.
type LogicType uint

const (
	LogicNone LogicType = iota
	LogicAnd
	LogicBuf
	LogicBufIf0
	LogicBufIf1
	LogicNand
	LogicNor
	LogicNot
	LogicNotIf0
	LogicNotIf1
	LogicOr
	LogicXnor
	LogicXor
)

var logicNames = map[LogicType]string{
	LogicNone:   "none",
	LogicAnd:    "and",
	LogicBuf:    "buf",
	LogicBufIf0: "bufif0",
	LogicBufIf1: "bufif1",
	LogicNand:   "nand",
	LogicNor:    "nor",
	LogicNot:    "not",
	LogicNotIf0: "notif0",
	LogicNotIf1: "notif1",
	LogicOr:     "or",
	LogicXnor:   "xnor",
	LogicXor:    "xor",
}

func (t LogicType) String() string {
	if n, ok := logicNames[t]; ok {
		return n
	}

	return fmt.Sprintf("logic(%d)", uint(t))
}

// ParseLogicType returns the LogicType for the given keyword, i.e. "and"
func ParseLogicType(s string) (LogicType, error) {
	for t, n := range logicNames {
		if n == s {
			return t, nil
		}
	}

	return LogicNone, fmt.Errorf("unknown logic type %q", s)
}

// ProcessType distinguishes one shot from repeating behavioral blocks.
type ProcessType uint

const (
	ProcessInitial ProcessType = iota
	ProcessAlways
)

func (t ProcessType) String() string {
	switch t {
	case ProcessInitial:
		return "initial"
	case ProcessAlways:
		return "always"
	}

	return fmt.Sprintf("process(%d)", uint(t))
}

// ParseProcessType returns the ProcessType for "initial" or "always"
func ParseProcessType(s string) (ProcessType, error) {
	switch s {
	case "initial":
		return ProcessInitial, nil
	case "always":
		return ProcessAlways, nil
	}

	return 0, fmt.Errorf("unknown process type %q, expected initial or always", s)
}

// StatementType is the tag of a node in a process statement tree.
type StatementType uint

const (
	StatementNone StatementType = iota
	StatementAssign
	StatementBlock
	StatementCondit
	StatementDelay
	StatementDelayX
	StatementNoop
	StatementSTask
	StatementTrigger
	StatementWait
	StatementWhile
)

var statementNames = map[StatementType]string{
	StatementNone:    "none",
	StatementAssign:  "assign",
	StatementBlock:   "block",
	StatementCondit:  "condit",
	StatementDelay:   "delay",
	StatementDelayX:  "delayx",
	StatementNoop:    "noop",
	StatementSTask:   "stask",
	StatementTrigger: "trigger",
	StatementWait:    "wait",
	StatementWhile:   "while",
}

func (t StatementType) String() string {
	if n, ok := statementNames[t]; ok {
		return n
	}

	return fmt.Sprintf("statement(%d)", uint(t))
}
