package design

// Design is the whole elaborated unit handed to a target at start and end.
type Design interface {
	// RootName returns the name of the root module
	RootName() string
	// Flag returns the value of a command line style option, i.e. "-o"
	Flag(name string) (string, bool)
	// FlagNames returns the names of every option set on the design
	FlagNames() []string
}

// Nexus is a resolved connection point joining one or more pins.
type Nexus interface {
	Name() string
}

// Bufz is a zero delay buffer between two nexus.
type Bufz interface {
	Input() Nexus
	Output() Nexus
}

// Const is a constant driver.
type Const interface {
	Bits() string
}

// Event is a named event that processes can wait on.
type Event interface {
	Edge() string
}

// Probe watches a nexus on behalf of an event.
type Probe interface {
	Event() string
}

// Signal is a wire or a register.
type Signal interface {
	Pins() uint
}

// Logic is a primitive gate with ordered pins.
type Logic interface {
	Type() LogicType
	Pins() uint
	// Pin returns the nexus connected to the pin at idx, nil when idx is out
	// of range
	Pin(idx uint) Nexus
}

// Process is an initial or always block.
type Process interface {
	Type() ProcessType
	Stmt() Statement
}

// Statement is a node of a statement tree. The variant interfaces below
// expose the children of each tag, a Statement reporting a tag is expected
// to implement the matching variant.
type Statement interface {
	Type() StatementType
}

// Block is a sequential begin/end group.
type Block interface {
	Statement
	Count() uint
	Stmt(idx uint) Statement
}

// Condit is an if statement, either branch may be nil.
type Condit interface {
	Statement
	True() Statement
	False() Statement
}

// Delay is a #n statement.
type Delay interface {
	Statement
	DelayValue() uint64
	Sub() Statement
}

// SysTask is a call to a system task such as $display.
type SysTask interface {
	Statement
	TaskName() string
}

// Wait is an @(...) event control.
type Wait interface {
	Statement
	Sub() Statement
}

// While is a while loop.
type While interface {
	Statement
	Sub() Statement
}
