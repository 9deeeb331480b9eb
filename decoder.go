package hdltarget

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/netlist"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	TypeDesign   = "design"
	TypeVariable = "variable"

	TypeBufz    = "bufz"
	TypeConst   = "const"
	TypeEvent   = "event"
	TypeLogic   = "logic"
	TypeProbe   = "probe"
	TypeSignal  = "signal"
	TypeProcess = "process"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: TypeVariable, LabelNames: []string{"name"}},
		{Type: TypeDesign, LabelNames: []string{"name"}},
	},
}

var designSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "flags"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: TypeBufz, LabelNames: []string{"name"}},
		{Type: TypeConst, LabelNames: []string{"name"}},
		{Type: TypeEvent, LabelNames: []string{"name"}},
		{Type: TypeLogic, LabelNames: []string{"name"}},
		{Type: TypeProbe, LabelNames: []string{"name"}},
		{Type: TypeSignal, LabelNames: []string{"name"}},
		{Type: TypeProcess, LabelNames: []string{"type"}},
	},
}

// statement blocks, each takes at most one nested statement except block
// which takes a list
var statementBlocks = []hcl.BlockHeaderSchema{
	{Type: "assign"},
	{Type: "block"},
	{Type: "condition"},
	{Type: "delay"},
	{Type: "delayx"},
	{Type: "noop"},
	{Type: "stask"},
	{Type: "trigger"},
	{Type: "wait"},
	{Type: "while"},
}

type variableBlock struct {
	Default cty.Value `hcl:"default,optional"`
}

type bufzBlock struct {
	Input  string `hcl:"input,optional"`
	Output string `hcl:"output,optional"`
}

type constBlock struct {
	Bits string `hcl:"bits"`
}

type eventBlock struct {
	Edge string `hcl:"edge,optional"`
}

type logicBlock struct {
	Type string   `hcl:"type"`
	Pins []string `hcl:"pins,optional"`
}

type probeBlock struct {
	Event string `hcl:"event"`
}

type signalBlock struct {
	Width uint `hcl:"width,optional"`
}

// decoder builds a netlist from the body of a design file
type decoder struct {
	ctx      *hcl.EvalContext
	filename string
	logger   logger.Logger
}

// file decodes the root body, variables are set before the design block is
// evaluated and setVars is called after the variable defaults so env and
// options take precedence
func (d *decoder) file(body hcl.Body, setVars func(*hcl.EvalContext)) (*netlist.Design, hcl.Diagnostics) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	setVars(d.ctx)

	var designs []*hcl.Block
	for _, b := range content.Blocks {
		switch b.Type {
		case TypeVariable:
			v := variableBlock{}
			if diags := gohcl.DecodeBody(b.Body, d.ctx, &v); diags.HasErrors() {
				return nil, diags
			}

			if v.Default.IsNull() {
				v.Default = cty.NullVal(cty.DynamicPseudoType)
			}

			setContextVariableIfMissing(d.ctx, b.Labels[0], v.Default)
		case TypeDesign:
			designs = append(designs, b)
		}
	}

	if len(designs) != 1 {
		rng := body.MissingItemRange()
		if len(designs) > 1 {
			rng = designs[1].DefRange
		}

		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid design file",
			Detail:   fmt.Sprintf("a design file must contain exactly one design block, found %d", len(designs)),
			Subject:  &rng,
		}}
	}

	return d.design(designs[0])
}

func (d *decoder) design(b *hcl.Block) (*netlist.Design, hcl.Diagnostics) {
	des := netlist.NewDesign(b.Labels[0])

	content, diags := b.Body.Content(designSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	if attr, ok := content.Attributes["flags"]; ok {
		flags := map[string]string{}
		diags = append(diags, d.decodeAttribute(attr, cty.Map(cty.String), &flags)...)

		for k, v := range flags {
			des.SetFlag(k, v)
		}
	}

	names := map[string]*hcl.Block{}

	for _, blk := range content.Blocks {
		if blk.Type != TypeProcess {
			if prev, ok := names[blk.Labels[0]]; ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate element",
					Detail:   fmt.Sprintf("%s %q is already defined at %s", blk.Type, blk.Labels[0], prev.DefRange),
					Subject:  &blk.LabelRanges[0],
				})

				continue
			}

			names[blk.Labels[0]] = blk
		}

		e, ediags := d.element(blk)
		diags = append(diags, ediags...)

		if e != nil {
			des.Add(e)
		}
	}

	return des, diags
}

func (d *decoder) element(blk *hcl.Block) (netlist.Element, hcl.Diagnostics) {
	name := blk.Labels[0]

	switch blk.Type {
	case TypeBufz:
		v := bufzBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		return &netlist.Bufz{Name: name, In: v.Input, Out: v.Output}, diags

	case TypeConst:
		v := constBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		return &netlist.Const{Name: name, Value: v.Bits}, diags

	case TypeEvent:
		v := eventBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		return &netlist.Event{Name: name, On: v.Edge}, diags

	case TypeProbe:
		v := probeBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		return &netlist.Probe{Name: name, EventName: v.Event}, diags

	case TypeSignal:
		v := signalBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		return &netlist.Signal{Name: name, Width: v.Width}, diags

	case TypeLogic:
		v := logicBlock{}
		diags := gohcl.DecodeBody(blk.Body, d.ctx, &v)
		if diags.HasErrors() {
			return nil, diags
		}

		gate, err := design.ParseLogicType(v.Type)
		if err != nil {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid logic type",
				Detail:   err.Error(),
				Subject:  &blk.DefRange,
			}}
		}

		return &netlist.Logic{Name: name, Gate: gate, Nexus: v.Pins}, nil

	case TypeProcess:
		return d.process(blk)
	}

	return nil, nil
}

func (d *decoder) process(blk *hcl.Block) (netlist.Element, hcl.Diagnostics) {
	mode, err := design.ParseProcessType(blk.Labels[0])
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid process type",
			Detail:   err.Error(),
			Subject:  &blk.LabelRanges[0],
		}}
	}

	content, diags := blk.Body.Content(&hcl.BodySchema{Blocks: statementBlocks})
	if diags.HasErrors() {
		return nil, diags
	}

	body, bdiags := d.child(content)
	diags = append(diags, bdiags...)

	d.logger.Debug("decoded process", "type", mode, "file", d.filename, "line", blk.DefRange.Start.Line)

	return &netlist.Process{Mode: mode, Body: body}, diags
}

// statement decodes a single statement block and its children
func (d *decoder) statement(blk *hcl.Block) (*netlist.Statement, hcl.Diagnostics) {
	switch blk.Type {
	case "assign", "noop":
		_, diags := blk.Body.Content(&hcl.BodySchema{})
		if blk.Type == "assign" {
			return netlist.Assign(), diags
		}

		return netlist.Noop(), diags

	case "block":
		content, diags := blk.Body.Content(&hcl.BodySchema{Blocks: statementBlocks})
		if diags.HasErrors() {
			return nil, diags
		}

		stmts := make([]*netlist.Statement, 0, len(content.Blocks))
		for _, b := range content.Blocks {
			s, sdiags := d.statement(b)
			diags = append(diags, sdiags...)
			stmts = append(stmts, s)
		}

		return netlist.Block(stmts...), diags

	case "condition":
		return d.condition(blk)

	case "delay":
		content, diags := blk.Body.Content(&hcl.BodySchema{
			Attributes: []hcl.AttributeSchema{{Name: "value", Required: true}},
			Blocks:     statementBlocks,
		})
		if diags.HasErrors() {
			return nil, diags
		}

		var value uint64
		diags = append(diags, d.decodeAttribute(content.Attributes["value"], cty.Number, &value)...)

		sub, sdiags := d.child(content)
		return netlist.Delay(value, sub), append(diags, sdiags...)

	case "delayx", "while":
		content, diags := blk.Body.Content(&hcl.BodySchema{Blocks: statementBlocks})
		if diags.HasErrors() {
			return nil, diags
		}

		sub, sdiags := d.child(content)
		diags = append(diags, sdiags...)

		if blk.Type == "while" {
			return netlist.While(sub), diags
		}

		return &netlist.Statement{Tag: design.StatementDelayX, Child: sub}, diags

	case "stask":
		content, diags := blk.Body.Content(&hcl.BodySchema{
			Attributes: []hcl.AttributeSchema{{Name: "name", Required: true}},
		})
		if diags.HasErrors() {
			return nil, diags
		}

		var name string
		diags = append(diags, d.decodeAttribute(content.Attributes["name"], cty.String, &name)...)

		return netlist.SysTask(name), diags

	case "trigger", "wait":
		schema := &hcl.BodySchema{Attributes: []hcl.AttributeSchema{{Name: "event"}}}
		if blk.Type == "wait" {
			schema.Blocks = statementBlocks
		}

		content, diags := blk.Body.Content(schema)
		if diags.HasErrors() {
			return nil, diags
		}

		var event string
		if attr, ok := content.Attributes["event"]; ok {
			diags = append(diags, d.decodeAttribute(attr, cty.String, &event)...)
		}

		if blk.Type == "trigger" {
			return &netlist.Statement{Tag: design.StatementTrigger, Event: event}, diags
		}

		sub, sdiags := d.child(content)
		return netlist.Wait(event, sub), append(diags, sdiags...)
	}

	return nil, hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unknown statement",
		Detail:   fmt.Sprintf("statement %q is not supported", blk.Type),
		Subject:  &blk.DefRange,
	}}
}

func (d *decoder) condition(blk *hcl.Block) (*netlist.Statement, hcl.Diagnostics) {
	content, diags := blk.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "then"}, {Type: "else"}},
	})
	if diags.HasErrors() {
		return nil, diags
	}

	branches := map[string]*netlist.Statement{}

	for _, b := range content.Blocks {
		if _, ok := branches[b.Type]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate branch",
				Detail:   fmt.Sprintf("a condition can only have one %s block", b.Type),
				Subject:  &b.DefRange,
			})

			continue
		}

		bc, bdiags := b.Body.Content(&hcl.BodySchema{Blocks: statementBlocks})
		diags = append(diags, bdiags...)
		if bdiags.HasErrors() {
			continue
		}

		s, sdiags := d.child(bc)
		diags = append(diags, sdiags...)
		branches[b.Type] = s
	}

	return netlist.If(branches["then"], branches["else"]), diags
}

// child returns the single nested statement of content, nil when there is
// none
func (d *decoder) child(content *hcl.BodyContent) (*netlist.Statement, hcl.Diagnostics) {
	switch len(content.Blocks) {
	case 0:
		return nil, nil
	case 1:
		return d.statement(content.Blocks[0])
	}

	return nil, hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Too many statements",
		Detail:   "only one nested statement is allowed here, use a block to group statements",
		Subject:  &content.Blocks[1].DefRange,
	}}
}

// decodeAttribute evaluates attr, converts it to ty and stores it in target
func (d *decoder) decodeAttribute(attr *hcl.Attribute, ty cty.Type, target interface{}) hcl.Diagnostics {
	val, diags := attr.Expr.Value(d.ctx)
	if diags.HasErrors() {
		return diags
	}

	val, err := convert.Convert(val, ty)
	if err == nil {
		err = gocty.FromCtyValue(val, target)
	}

	if err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid value for %s", attr.Name),
			Detail:   err.Error(),
			Subject:  &attr.Range,
		}}
	}

	return nil
}
