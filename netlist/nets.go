package netlist

import "github.com/jumppad-labs/hdltarget/design"

// Bufz is a zero delay buffer
type Bufz struct {
	Name string `json:"name"`
	In   string `json:"input,omitempty"`
	Out  string `json:"output,omitempty"`
}

func (b *Bufz) Kind() ElementKind    { return KindBufz }
func (b *Bufz) ElementName() string  { return b.Name }
func (b *Bufz) Input() design.Nexus  { return nexusOrNil(b.In) }
func (b *Bufz) Output() design.Nexus { return nexusOrNil(b.Out) }

// Const is a constant driver, Value holds the bits msb first
type Const struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

func (c *Const) Kind() ElementKind   { return KindConst }
func (c *Const) ElementName() string { return c.Name }
func (c *Const) Bits() string        { return c.Value }

// Event is a named event
type Event struct {
	Name string `json:"name"`
	On   string `json:"edge,omitempty"`
}

func (e *Event) Kind() ElementKind   { return KindEvent }
func (e *Event) ElementName() string { return e.Name }
func (e *Event) Edge() string        { return e.On }

// Probe watches a nexus for an event
type Probe struct {
	Name      string `json:"name"`
	EventName string `json:"event,omitempty"`
}

func (p *Probe) Kind() ElementKind   { return KindProbe }
func (p *Probe) ElementName() string { return p.Name }
func (p *Probe) Event() string       { return p.EventName }

// Signal is a wire or register Width bits wide
type Signal struct {
	Name  string `json:"name"`
	Width uint   `json:"width"`
}

func (s *Signal) Kind() ElementKind   { return KindSignal }
func (s *Signal) ElementName() string { return s.Name }
func (s *Signal) Pins() uint          { return s.Width }

// Logic is a gate, Nexus holds the name of the connection point of each pin
// in pin order, an empty name is an unconnected pin
type Logic struct {
	Name  string           `json:"name"`
	Gate  design.LogicType `json:"gate"`
	Nexus []string         `json:"pins"`
}

func (l *Logic) Kind() ElementKind      { return KindLogic }
func (l *Logic) ElementName() string    { return l.Name }
func (l *Logic) Type() design.LogicType { return l.Gate }
func (l *Logic) Pins() uint             { return uint(len(l.Nexus)) }

func (l *Logic) Pin(idx uint) design.Nexus {
	if idx >= uint(len(l.Nexus)) {
		return nil
	}

	return nexusOrNil(l.Nexus[idx])
}

var (
	_ design.Bufz   = (*Bufz)(nil)
	_ design.Const  = (*Const)(nil)
	_ design.Event  = (*Event)(nil)
	_ design.Probe  = (*Probe)(nil)
	_ design.Signal = (*Signal)(nil)
	_ design.Logic  = (*Logic)(nil)
)
