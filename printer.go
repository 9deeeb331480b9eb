package hdltarget

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/netlist"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// PrintFormat represents different output formats for the design printer
type PrintFormat string

const (
	FormatTable  PrintFormat = "table"
	FormatTree   PrintFormat = "tree"
	FormatJSON   PrintFormat = "json"
	FormatGoDump PrintFormat = "go"
	FormatYAML   PrintFormat = "yaml"
)

// PrinterOptions configures the DesignPrinter behavior
type PrinterOptions struct {
	// Output writer (defaults to os.Stdout)
	Writer io.Writer
	// Enable/disable color output (auto-detected by default)
	ColorEnabled *bool
	// Width of the table format
	MaxWidth int
}

// PrinterOption is a functional option for configuring the printer
type PrinterOption func(*PrinterOptions)

// WithWriter sets the output writer
func WithWriter(w io.Writer) PrinterOption {
	return func(o *PrinterOptions) {
		o.Writer = w
	}
}

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(o *PrinterOptions) {
		o.ColorEnabled = &enabled
	}
}

// WithMaxWidth sets the width of the table format
func WithMaxWidth(width int) PrinterOption {
	return func(o *PrinterOptions) {
		o.MaxWidth = width
	}
}

// DesignPrinter prints a parsed design for inspection
type DesignPrinter struct {
	options PrinterOptions
	colors  struct {
		header *color.Color
		kind   *color.Color
		field  *color.Color
		value  *color.Color
	}
}

// NewDesignPrinter creates a new DesignPrinter with the given options
func NewDesignPrinter(opts ...PrinterOption) *DesignPrinter {
	options := PrinterOptions{
		Writer:   os.Stdout,
		MaxWidth: 60,
	}

	for _, opt := range opts {
		opt(&options)
	}

	// Auto-detect color support if not explicitly set
	if options.ColorEnabled == nil {
		enabled := !color.NoColor
		options.ColorEnabled = &enabled
	}

	p := &DesignPrinter{options: options}
	p.colors.header = color.New(color.FgCyan, color.Bold)
	p.colors.kind = color.New(color.FgGreen)
	p.colors.field = color.New(color.FgBlue)
	p.colors.value = color.New(color.FgWhite)

	for _, c := range []*color.Color{p.colors.header, p.colors.kind, p.colors.field, p.colors.value} {
		if *options.ColorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes the design in the given format
func (p *DesignPrinter) Print(des *netlist.Design, format PrintFormat) error {
	switch format {
	case FormatTable:
		return p.printTable(des)
	case FormatTree:
		return p.printTree(des)
	case FormatJSON:
		return p.printJSON(des)
	case FormatYAML:
		return p.printYAML(des)
	case FormatGoDump:
		_, err := pretty.Fprintf(p.options.Writer, "%# v\n", des)
		return err
	}

	return fmt.Errorf("unsupported format: %s", format)
}

// visualLength returns the visual length of a string, excluding ANSI escape codes
func visualLength(s string) int {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return len(ansiRegex.ReplaceAllString(s, ""))
}

// printTable prints a summary of the design with one row per element kind
func (p *DesignPrinter) printTable(des *netlist.Design) error {
	width := p.options.MaxWidth
	if width < 40 {
		width = 40
	}

	w := p.options.Writer
	row := func(label, value string) {
		l := p.colors.field.Sprint(label)
		v := p.colors.value.Sprint(value)

		padding := width - 4 - visualLength(l) - 1 - visualLength(v)
		if padding < 0 {
			padding = 0
		}

		fmt.Fprintf(w, "│ %s %s%s │\n", l, v, strings.Repeat(" ", padding))
	}

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", width-2))

	header := p.colors.header.Sprintf("Design: %s", des.RootName())
	fmt.Fprintf(w, "│ %s%s │\n", header, strings.Repeat(" ", max(0, width-4-visualLength(header))))

	fmt.Fprintf(w, "├%s┤\n", strings.Repeat("─", width-2))

	if des.File != "" {
		row("File:", des.File)
	}

	for _, n := range des.FlagNames() {
		v, _ := des.Flag(n)
		row("Flag:", fmt.Sprintf("%s = %s", n, v))
	}

	for k := netlist.KindBufz; k <= netlist.KindProcess; k++ {
		if c := des.Count(k); c > 0 {
			row(k.String()+":", fmt.Sprintf("%d", c))
		}
	}

	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", width-2))

	return nil
}

// printTree prints every element and the statement tree of processes
func (p *DesignPrinter) printTree(des *netlist.Design) error {
	w := p.options.Writer

	fmt.Fprintln(w, p.colors.header.Sprintf("design %s", des.RootName()))

	for i, e := range des.Elements {
		branch, indent := "├── ", "│   "
		if i == len(des.Elements)-1 {
			branch, indent = "└── ", "    "
		}

		fmt.Fprintf(w, "%s%s %s%s\n", branch, p.colors.kind.Sprint(e.Kind()), e.ElementName(), p.details(e))

		if proc, ok := e.(*netlist.Process); ok {
			p.printStatement(proc.Body, indent+"    ")
		}
	}

	return nil
}

func (p *DesignPrinter) details(e netlist.Element) string {
	var d string

	switch el := e.(type) {
	case *netlist.Bufz:
		d = fmt.Sprintf("%s -> %s", el.In, el.Out)
	case *netlist.Const:
		d = el.Value
	case *netlist.Event:
		d = el.On
	case *netlist.Probe:
		d = el.EventName
	case *netlist.Signal:
		d = fmt.Sprintf("[%d]", el.Width)
	case *netlist.Logic:
		d = fmt.Sprintf("%s (%s)", el.Gate, strings.Join(el.Nexus, ", "))
	default:
		return ""
	}

	return " " + p.colors.value.Sprint(d)
}

func (p *DesignPrinter) printStatement(s *netlist.Statement, indent string) {
	w := p.options.Writer

	if s == nil {
		fmt.Fprintf(w, "%s%s\n", indent, p.colors.field.Sprint("<empty>"))
		return
	}

	label := s.Tag.String()
	switch s.Tag {
	case design.StatementDelay:
		label = fmt.Sprintf("%s %d", label, s.Value)
	case design.StatementSTask:
		label = fmt.Sprintf("%s %s", label, s.Name)
	case design.StatementWait, design.StatementTrigger:
		if s.Event != "" {
			label = fmt.Sprintf("%s %s", label, s.Event)
		}
	}

	fmt.Fprintf(w, "%s%s\n", indent, p.colors.field.Sprint(label))

	next := indent + "  "
	switch s.Tag {
	case design.StatementBlock:
		for _, c := range s.Body {
			p.printStatement(c, next)
		}
	case design.StatementCondit:
		fmt.Fprintf(w, "%sthen\n", next)
		p.printStatement(s.Then, next+"  ")

		if s.Else != nil {
			fmt.Fprintf(w, "%selse\n", next)
			p.printStatement(s.Else, next+"  ")
		}
	case design.StatementDelay, design.StatementDelayX, design.StatementWait, design.StatementWhile:
		p.printStatement(s.Child, next)
	}
}

func (p *DesignPrinter) printJSON(des *netlist.Design) error {
	enc := json.NewEncoder(p.options.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(des)
}

// yamlElement is the YAML document of an element, only the fields of the
// element's kind are set
type yamlElement struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name"`
	Width  uint           `yaml:"width,omitempty"`
	Value  string         `yaml:"value,omitempty"`
	Input  string         `yaml:"input,omitempty"`
	Output string         `yaml:"output,omitempty"`
	Edge   string         `yaml:"edge,omitempty"`
	Event  string         `yaml:"event,omitempty"`
	Gate   string         `yaml:"gate,omitempty"`
	Pins   []string       `yaml:"pins,omitempty"`
	Body   *yamlStatement `yaml:"body,omitempty"`
}

type yamlStatement struct {
	Type  string           `yaml:"type"`
	Value uint64           `yaml:"value,omitempty"`
	Name  string           `yaml:"name,omitempty"`
	Event string           `yaml:"event,omitempty"`
	Body  []*yamlStatement `yaml:"body,omitempty"`
	Then  *yamlStatement   `yaml:"then,omitempty"`
	Else  *yamlStatement   `yaml:"else,omitempty"`
	Child *yamlStatement   `yaml:"child,omitempty"`
}

func (p *DesignPrinter) printYAML(des *netlist.Design) error {
	doc := struct {
		Root     string            `yaml:"root"`
		File     string            `yaml:"file,omitempty"`
		Flags    map[string]string `yaml:"flags,omitempty"`
		Elements []yamlElement     `yaml:"elements"`
	}{
		Root:     des.RootName(),
		File:     des.File,
		Flags:    des.Flags,
		Elements: make([]yamlElement, 0, len(des.Elements)),
	}

	for _, e := range des.Elements {
		ye := yamlElement{Kind: e.Kind().String(), Name: e.ElementName()}

		switch el := e.(type) {
		case *netlist.Bufz:
			ye.Input, ye.Output = el.In, el.Out
		case *netlist.Const:
			ye.Value = el.Value
		case *netlist.Event:
			ye.Edge = el.On
		case *netlist.Probe:
			ye.Event = el.EventName
		case *netlist.Signal:
			ye.Width = el.Width
		case *netlist.Logic:
			ye.Gate, ye.Pins = el.Gate.String(), el.Nexus
		case *netlist.Process:
			ye.Body = toYAMLStatement(el.Body)
		}

		doc.Elements = append(doc.Elements, ye)
	}

	enc := yaml.NewEncoder(p.options.Writer)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func toYAMLStatement(s *netlist.Statement) *yamlStatement {
	if s == nil {
		return nil
	}

	ys := &yamlStatement{
		Type:  s.Tag.String(),
		Value: s.Value,
		Name:  s.Name,
		Event: s.Event,
		Then:  toYAMLStatement(s.Then),
		Else:  toYAMLStatement(s.Else),
		Child: toYAMLStatement(s.Child),
	}

	for _, c := range s.Body {
		ys.Body = append(ys.Body, toYAMLStatement(c))
	}

	return ys
}
