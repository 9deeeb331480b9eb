// Package hdltarget reads elaborated designs from HCL files and builds the
// netlist a host passes to a target module.
package hdltarget

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jumppad-labs/hdltarget/errors"
	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/netlist"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

type ParserOptions struct {
	// list of default variable values to add to the parser
	Variables map[string]string
	// environment variable prefix, setting HDL_VAR_foo overrides the default
	// value of the variable foo
	VariableEnvPrefix string `default:"HDL_VAR_"`
	// location of any downloaded designs
	DesignCache string
	// Logger receives debug output from the parser, may be nil
	Logger logger.Logger
}

// DefaultOptions returns a ParserOptions object with the DesignCache set to
// $HOME/.hdltarget/cache, if the $HOME folder can not be determined the
// cache is set to the current folder
func DefaultOptions() *ParserOptions {
	o := &ParserOptions{}
	defaults.Set(o)

	return o
}

// SetDefaults is called by creasty/defaults for the fields that can not be
// set from a tag
func (o *ParserOptions) SetDefaults() {
	if o.DesignCache == "" {
		cacheDir, err := os.UserHomeDir()
		if err != nil {
			cacheDir = "."
		}

		o.DesignCache = filepath.Join(cacheDir, ".hdltarget", "cache")
	}

	if o.Variables == nil {
		o.Variables = map[string]string{}
	}

	if o.Logger == nil {
		o.Logger = logger.NopLogger{}
	}
}

// Parser can parse HCL design files
type Parser struct {
	options             ParserOptions
	registeredFunctions map[string]function.Function
	fetcher             DesignFetcher
}

// NewParser creates a new parser with the given options, if options are nil
// default options are used. Unset fields are defaulted.
func NewParser(options *ParserOptions) *Parser {
	o := DefaultOptions()
	if options != nil {
		o = options
		defaults.Set(o)
	}

	return &Parser{
		options:             *o,
		registeredFunctions: map[string]function.Function{},
		fetcher:             NewRemoteFetcher(o.DesignCache),
	}
}

// RegisterFunction registers a custom interpolation function with the given
// name, only functions with string and int parameters are supported
func (p *Parser) RegisterFunction(name string, f interface{}) error {
	ctyFunc, err := createCtyFunctionFromGoFunc(f)
	if err != nil {
		return err
	}

	p.registeredFunctions[name] = ctyFunc

	return nil
}

// ParseFile parses the design in the given file
func (p *Parser) ParseFile(file string) (*netlist.Design, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read design file %s: %w", file, err)
	}

	return p.ParseSource(file, d)
}

// ParseSource parses a design from src, filename is used in diagnostics and
// as the base for relative paths in functions like file
func (p *Parser) ParseSource(filename string, src []byte) (*netlist.Design, error) {
	ce := errors.NewConfigError()

	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		appendDiagnostics(ce, diags, true)
		return nil, ce
	}

	ctx := p.buildContext(filename)

	dec := &decoder{ctx: ctx, filename: filename, logger: p.options.Logger}
	des, diags := dec.file(f.Body, p.setVariables)
	if diags.HasErrors() {
		appendDiagnostics(ce, diags, false)
		return nil, ce
	}

	des.File = filename

	p.options.Logger.Debug("parsed design", "design", des.RootName(), "file", filename, "elements", len(des.Elements))

	return des, nil
}

// ParseRemote fetches the design at src into the design cache and parses
// it. src can be any go-getter source, see RemoteFetcher for the layout of the
// cache. A cached copy is reused unless refresh is set.
func (p *Parser) ParseRemote(ctx context.Context, src string, refresh bool) (*netlist.Design, error) {
	file, err := p.fetcher.Fetch(ctx, src, refresh)
	if err != nil {
		return nil, err
	}

	p.options.Logger.Debug("fetched design", "source", src, "file", file)

	return p.ParseFile(file)
}

func (p *Parser) buildContext(filePath string) *hcl.EvalContext {
	ctx := &hcl.EvalContext{
		Functions: getDefaultFunctions(filePath),
		Variables: map[string]cty.Value{},
	}

	ctx.Variables["var"] = cty.ObjectVal(map[string]cty.Value{})

	// add the custom functions
	for k, v := range p.registeredFunctions {
		ctx.Functions[k] = v
	}

	return ctx
}

// setVariables allow variables to be set from a collection or environment
// variables, precedence is variable default, env, options
func (p *Parser) setVariables(ctx *hcl.EvalContext) {
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, p.options.VariableEnvPrefix) {
			parts := strings.SplitN(e, "=", 2)

			if len(parts) == 2 {
				key := strings.TrimPrefix(parts[0], p.options.VariableEnvPrefix)
				setContextVariable(ctx, key, valueFromString(parts[1]))
			}
		}
	}

	for k, v := range p.options.Variables {
		setContextVariable(ctx, k, valueFromString(v))
	}
}

func setContextVariable(ctx *hcl.EvalContext, key string, value cty.Value) {
	valMap := ctx.Variables["var"].AsValueMap()
	if valMap == nil {
		valMap = map[string]cty.Value{}
	}

	valMap[key] = value
	ctx.Variables["var"] = cty.ObjectVal(valMap)
}

func setContextVariableIfMissing(ctx *hcl.EvalContext, key string, value cty.Value) {
	if m := ctx.Variables["var"].AsValueMap(); m != nil {
		if _, ok := m[key]; ok {
			return
		}
	}

	setContextVariable(ctx, key, value)
}

func appendDiagnostics(ce *errors.ConfigError, diags hcl.Diagnostics, parse bool) {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}

		if parse {
			ce.AppendParseError(errors.NewParserErrorFromHCLDiag(d))
		} else {
			ce.AppendProcessError(errors.NewParserErrorFromHCLDiag(d))
		}
	}
}
