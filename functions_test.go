package hdltarget

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCreateFunctionCreatesFunctionWithCorrectInParameters(t *testing.T) {
	myfunc := func(a string, b int) int {
		return 0
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	require.Equal(t, cty.String, ctyFunc.Params()[0].Type)
	require.Equal(t, cty.Number, ctyFunc.Params()[1].Type)
}

func TestCreateFunctionWithInvalidInParameterReturnsError(t *testing.T) {
	myfunc := func(a string, complex func() error) int {
		return 0
	}

	_, err := createCtyFunctionFromGoFunc(myfunc)
	require.Error(t, err)
}

func TestCreateFunctionWithInvalidOutParameterReturnsError(t *testing.T) {
	myfunc := func(a string, b int) func() error {
		return func() error {
			return fmt.Errorf("oops")
		}
	}

	_, err := createCtyFunctionFromGoFunc(myfunc)
	require.Error(t, err)
}

func TestCreateFunctionCallsFunction(t *testing.T) {
	myfunc := func(a, b int) int {
		return a + b
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	val, err := ctyFunc.Call([]cty.Value{cty.NumberIntVal(2), cty.NumberIntVal(3)})
	require.NoError(t, err)

	i, _ := val.AsBigFloat().Int64()
	require.Equal(t, int64(5), i)
}

func TestCreateFunctionReturnsStrings(t *testing.T) {
	ctyFunc, err := createCtyFunctionFromGoFunc(func(a string) string { return a + "_n" })
	require.NoError(t, err)

	val, err := ctyFunc.Call([]cty.Value{cty.StringVal("clk")})
	require.NoError(t, err)
	require.Equal(t, "clk_n", val.AsString())
}

func TestEnvFunctionReadsEnvironment(t *testing.T) {
	t.Setenv("HDL_TEST_OUTPUT", "out.txt")

	val, err := getDefaultFunctions(".")["env"].Call([]cty.Value{cty.StringVal("HDL_TEST_OUTPUT")})
	require.NoError(t, err)
	require.Equal(t, "out.txt", val.AsString())
}

func TestFileFunctionReadsRelativeToDesign(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.txt"), []byte("0101"), 0644))

	design := filepath.Join(dir, "design.hcl")
	require.NoError(t, os.WriteFile(design, []byte(""), 0644))

	val, err := getDefaultFunctions(design)["file"].Call([]cty.Value{cty.StringVal("bits.txt")})
	require.NoError(t, err)
	require.Equal(t, "0101", val.AsString())
}

func TestTemplateFileFunctionRendersHandlebars(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "name.tmpl"), []byte("{{name}}_{{width}}"), 0644))

	design := filepath.Join(dir, "design.hcl")

	val, err := getDefaultFunctions(design)["template_file"].Call([]cty.Value{
		cty.StringVal("name.tmpl"),
		cty.ObjectVal(map[string]cty.Value{
			"name":  cty.StringVal("bus"),
			"width": cty.NumberIntVal(8),
		}),
	})
	require.NoError(t, err)
	require.Equal(t, "bus_8", val.AsString())
}

func TestTemplateFileFunctionRequiresObject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "name.tmpl"), []byte("{{name}}"), 0644))

	_, err := getDefaultFunctions(filepath.Join(dir, "design.hcl"))["template_file"].Call([]cty.Value{
		cty.StringVal("name.tmpl"),
		cty.StringVal("bus"),
	})
	require.Error(t, err)
}
