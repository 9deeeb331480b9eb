package errors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

func writeDesign(t *testing.T) string {
	f := filepath.Join(t.TempDir(), "design.hcl")
	src := "design \"top\" {\n  logic \"g1\" {\n    type = \"mux\"\n  }\n}\n"
	require.NoError(t, os.WriteFile(f, []byte(src), 0644))

	return f
}

func TestParserErrorOutputsString(t *testing.T) {
	err := ParserError{}
	err.Line = 3
	err.Column = 12
	err.Filename = writeDesign(t)
	err.Level = ParserErrorLevelError
	err.Message = "unknown logic type mux"

	require.Contains(t, err.Error(), "error:")
	require.Contains(t, err.Error(), ":3,12")
}

func TestParserErrorHighlightsLine(t *testing.T) {
	err := NewParserError(writeDesign(t), 3, 12, ParserErrorLevelError, "unknown logic type")

	require.Contains(t, err.Error(), "\033[1m      3 |     type = \"mux\"")
}

func TestParserErrorNonErrorLineGrey(t *testing.T) {
	err := NewParserError(writeDesign(t), 3, 12, ParserErrorLevelError, "unknown logic type")

	require.Contains(t, err.Error(), "\033[2m      1 | design \"top\" {")
}

func TestParserErrorWithoutFileOnlyPrintsMessage(t *testing.T) {
	err := NewParserError("", 0, 0, ParserErrorLevelWarning, "boom")

	require.Equal(t, "warning:\n  boom\n", err.Error())
}

func TestParserErrorFromHCLDiag(t *testing.T) {
	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported block type",
		Detail:   "Blocks of type \"mux\" are not expected here.",
		Subject: &hcl.Range{
			Filename: "design.hcl",
			Start:    hcl.Pos{Line: 4, Column: 3},
		},
	}

	pe := NewParserErrorFromHCLDiag(diag)

	require.Equal(t, "design.hcl", pe.Filename)
	require.Equal(t, 4, pe.Line)
	require.Equal(t, 3, pe.Column)
	require.Equal(t, ParserErrorLevelError, pe.Level)
	require.Contains(t, pe.Error(), "Unsupported block type")
}
