package hdltarget

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mailgun/raymond/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func createCtyFunctionFromGoFunc(f interface{}) (function.Function, error) {
	rf := reflect.TypeOf(f)
	if rf == nil || rf.Kind() != reflect.Func || rf.NumOut() != 1 {
		return function.Function{}, fmt.Errorf("custom functions must be a func with a single return value")
	}

	// get the parameters
	params := []function.Parameter{}

	for i := 0; i < rf.NumIn(); i++ {
		fp := rf.In(i)

		ty, err := ctyTypeForKind(fp.Kind())
		if err != nil {
			return function.Function{}, err
		}

		params = append(params, function.Parameter{
			Name:             fmt.Sprintf("arg%d", i),
			Type:             ty,
			AllowDynamicType: true,
		})
	}

	retType, err := ctyTypeForKind(rf.Out(0).Kind())
	if err != nil {
		return function.Function{}, err
	}

	return function.New(&function.Spec{
		Params: params,
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			// create the params
			in := []reflect.Value{}
			for i, a := range args {
				switch a.Type() {
				case cty.String:
					in = append(in, reflect.ValueOf(a.AsString()))
				case cty.Number:
					val, _ := a.AsBigFloat().Int64()
					in = append(in, reflect.ValueOf(val).Convert(rf.In(i)))
				}
			}

			out := reflect.ValueOf(f).Call(in)

			switch retType {
			case cty.Number:
				return cty.NumberIntVal(out[0].Int()), nil
			case cty.String:
				return cty.StringVal(out[0].String()), nil
			}

			return cty.NullVal(retType), nil
		},
		Type: function.StaticReturnType(retType),
	}), nil
}

func ctyTypeForKind(k reflect.Kind) (cty.Type, error) {
	switch k {
	case reflect.String:
		return cty.String, nil
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return cty.Number, nil
	}

	return cty.NilType, fmt.Errorf("type %v is not a valid cty type, only primitive types like string and basic numbers are supported", k)
}

func getDefaultFunctions(filePath string) map[string]function.Function {
	var EnvFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name:             "env",
				Type:             cty.String,
				AllowDynamicType: true,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(os.Getenv(args[0].AsString())), nil
		},
	})

	var HomeFunc = function.New(&function.Spec{
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := os.UserHomeDir()
			return cty.StringVal(h), nil
		},
	})

	var ReadFileFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name:             "path",
				Type:             cty.String,
				AllowDynamicType: true,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			fp := ensureAbsolute(args[0].AsString(), filePath)

			d, err := os.ReadFile(fp)
			if err != nil {
				return cty.StringVal(""), err
			}

			return cty.StringVal(string(d)), nil
		},
	})

	var ReadTemplateFileFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name:             "path",
				Type:             cty.String,
				AllowDynamicType: true,
			},
			{
				Name:             "variables",
				Type:             cty.DynamicPseudoType,
				AllowUnknown:     true,
				AllowDynamicType: true,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			fp := ensureAbsolute(args[0].AsString(), filePath)

			d, err := os.ReadFile(fp)
			if err != nil {
				return cty.StringVal(""), err
			}

			vars := args[1]
			if vars.IsNull() || !vars.Type().IsObjectType() {
				return cty.StringVal(""), fmt.Errorf(`variables is either empty or not correctly formatted, e.g. { width = 8 pins = ["a", "b"] }`)
			}

			tmpl, err := raymond.Parse(string(d))
			if err != nil {
				return cty.StringVal(""), fmt.Errorf("error parsing template: %s", err)
			}

			tmpl.RegisterHelpers(map[string]interface{}{
				"quote": func(in string) string {
					return fmt.Sprintf(`"%s"`, in)
				},
				"trim": func(in string) string {
					return strings.TrimSpace(in)
				},
			})

			result, err := tmpl.Exec(ParseVars(vars.AsValueMap()))
			if err != nil {
				return cty.StringVal(""), fmt.Errorf("error processing template: %s", err)
			}

			return cty.StringVal(result), nil
		},
	})

	var DirFunc = function.New(&function.Spec{
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			s, err := filepath.Abs(filePath)
			return cty.StringVal(filepath.Dir(s)), err
		},
	})

	return map[string]function.Function{
		"concat":        stdlib.ConcatFunc,
		"dir":           DirFunc,
		"env":           EnvFunc,
		"file":          ReadFileFunc,
		"format":        stdlib.FormatFunc,
		"home":          HomeFunc,
		"join":          stdlib.JoinFunc,
		"length":        stdlib.LengthFunc,
		"lower":         stdlib.LowerFunc,
		"max":           stdlib.MaxFunc,
		"min":           stdlib.MinFunc,
		"range":         stdlib.RangeFunc,
		"split":         stdlib.SplitFunc,
		"template_file": ReadTemplateFileFunc,
		"trimspace":     stdlib.TrimSpaceFunc,
		"upper":         stdlib.UpperFunc,
	}
}
