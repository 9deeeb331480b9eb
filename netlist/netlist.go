// Package netlist holds the host side of an elaborated design. Its types
// implement the read-only handles from the design package so a host can pass
// them straight to a target module.
package netlist

import (
	"fmt"
	"sort"

	"github.com/jumppad-labs/hdltarget/design"
)

// ElementKind is the category of a design element, it selects the callback
// the host invokes for the element.
type ElementKind int

const (
	KindBufz ElementKind = iota
	KindConst
	KindEvent
	KindLogic
	KindProbe
	KindSignal
	KindProcess
)

func (k ElementKind) String() string {
	switch k {
	case KindBufz:
		return "bufz"
	case KindConst:
		return "const"
	case KindEvent:
		return "event"
	case KindLogic:
		return "logic"
	case KindProbe:
		return "probe"
	case KindSignal:
		return "signal"
	case KindProcess:
		return "process"
	}

	return fmt.Sprintf("element(%d)", int(k))
}

// Element is a single object of the design visited by the host.
type Element interface {
	Kind() ElementKind
	ElementName() string
}

// Design is the root of the graph. Elements are kept in declaration order.
type Design struct {
	Root     string            `json:"root"`
	File     string            `json:"file,omitempty"`
	Flags    map[string]string `json:"flags"`
	Elements []Element         `json:"elements"`
}

// NewDesign creates an empty design for the given root module
func NewDesign(root string) *Design {
	return &Design{
		Root:     root,
		Flags:    map[string]string{},
		Elements: []Element{},
	}
}

// RootName returns the name of the root module
func (d *Design) RootName() string {
	return d.Root
}

// Flag returns the value of the named option
func (d *Design) Flag(name string) (string, bool) {
	v, ok := d.Flags[name]
	return v, ok
}

// SetFlag sets or overrides an option
func (d *Design) SetFlag(name, value string) {
	if d.Flags == nil {
		d.Flags = map[string]string{}
	}

	d.Flags[name] = value
}

// FlagNames returns the option keys in sorted order
func (d *Design) FlagNames() []string {
	names := make([]string, 0, len(d.Flags))
	for k := range d.Flags {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

// Add appends elements to the design
func (d *Design) Add(e ...Element) {
	d.Elements = append(d.Elements, e...)
}

// Count returns the number of elements of the given kind
func (d *Design) Count(k ElementKind) int {
	n := 0
	for _, e := range d.Elements {
		if e.Kind() == k {
			n++
		}
	}

	return n
}

var _ design.Design = (*Design)(nil)

// Nexus is a connection point referenced by name.
type Nexus string

func (n Nexus) Name() string {
	return string(n)
}

func nexusOrNil(name string) design.Nexus {
	if name == "" {
		return nil
	}

	return Nexus(name)
}
