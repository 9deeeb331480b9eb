package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-wordwrap"
)

const ParserErrorLevelError = "error"
const ParserErrorLevelWarning = "warning"

// ParserError is a detailed error that is returned when a design file can
// not be read
type ParserError struct {
	Filename string
	Line     int
	Column   int
	Summary  string
	Message  string
	Level    string
}

// Error pretty prints the error message with an excerpt of the design file
func (p *ParserError) Error() string {
	err := strings.Builder{}
	err.WriteString(p.Level + ":\n")

	msg := p.Message
	if p.Summary != "" {
		msg = p.Summary + ": " + msg
	}

	for _, l := range strings.Split(wordwrap.WrapString(msg, 80), "\n") {
		err.WriteString("  " + l + "\n")
	}

	if p.Filename == "" {
		return err.String()
	}

	err.WriteString("\n")
	err.WriteString(fmt.Sprintf("  %s:%d,%d\n", p.Filename, p.Line, p.Column))

	file, ferr := os.ReadFile(p.Filename)
	if ferr != nil || p.Line < 1 {
		return err.String()
	}

	lines := strings.Split(string(file), "\n")

	startLine := p.Line - 3
	if startLine < 0 {
		startLine = 0
	}

	endLine := p.Line + 2
	if endLine > len(lines) {
		endLine = len(lines)
	}

	for i := startLine; i < endLine; i++ {
		codelines := strings.Split(wordwrap.WrapString(lines[i], 70), "\n")

		style := "\033[2m"
		if i == p.Line-1 {
			style = "\033[1m"
		}

		err.WriteString(fmt.Sprintf("%s  %5d | %s\033[0m\n", style, i+1, codelines[0]))
		for _, l := range codelines[1:] {
			err.WriteString(fmt.Sprintf("%s        : %s\033[0m\n", style, l))
		}
	}

	return err.String()
}

// NewParserError creates a new ParserError with basic parameters
func NewParserError(filename string, line, column int, level, message string) *ParserError {
	return &ParserError{
		Filename: filename,
		Line:     line,
		Column:   column,
		Level:    level,
		Message:  message,
	}
}

// NewParserErrorFromHCLDiag creates a ParserError from an HCL diagnostic
func NewParserErrorFromHCLDiag(diag *hcl.Diagnostic) *ParserError {
	pe := &ParserError{
		Level:   ParserErrorLevelError,
		Summary: diag.Summary,
		Message: diag.Detail,
	}

	if diag.Severity == hcl.DiagWarning {
		pe.Level = ParserErrorLevelWarning
	}

	if diag.Subject != nil {
		pe.Filename = diag.Subject.Filename
		pe.Line = diag.Subject.Start.Line
		pe.Column = diag.Subject.Start.Column
	}

	return pe
}
