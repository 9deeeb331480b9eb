package hdltarget

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ParseVars converts a map[string]cty.Value into map[string]interface
// where the interface are generic go types like string, number, bool, slice, map
func ParseVars(value map[string]cty.Value) map[string]interface{} {
	vars := map[string]interface{}{}

	for k, v := range value {
		vars[k] = castVar(v)
	}

	return vars
}

func castVar(v cty.Value) interface{} {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	switch {
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type() == cty.Bool:
		return v.True()
	case v.Type() == cty.Number:
		// handlebars does not understand BigFloat
		val, _ := v.AsBigFloat().Float64()
		return val
	case v.Type().IsObjectType() || v.Type().IsMapType():
		return ParseVars(v.AsValueMap())
	case v.Type().IsTupleType() || v.Type().IsListType() || v.Type().IsSetType():
		vars := []interface{}{}

		for i := v.ElementIterator(); i.Next(); {
			_, value := i.Element()
			vars = append(vars, castVar(value))
		}

		return vars
	}

	if s, err := convert.Convert(v, cty.String); err == nil {
		return s.AsString()
	}

	return nil
}

func valueFromString(v string) cty.Value {
	// attempt to parse the string value into a known type
	if val, err := strconv.ParseInt(v, 10, 0); err == nil {
		return cty.NumberIntVal(val)
	}

	if val, err := strconv.ParseBool(v); err == nil {
		return cty.BoolVal(val)
	}

	return cty.StringVal(v)
}

// ensureAbsolute ensure that the given path is either absolute or
// if relative is converted to absolute based on the path of the design file
func ensureAbsolute(path, file string) string {
	// if the file starts with a / and we are on windows
	// we should treat this as absolute
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") {
		return filepath.Clean(path)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	file, _ = filepath.Abs(file)

	baseDir := file
	if s, err := os.Stat(file); err != nil || !s.IsDir() {
		baseDir = filepath.Dir(file)
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}
