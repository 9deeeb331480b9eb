package errors

import (
	"fmt"
	"strings"
)

// ElementFailure is a single callback that reported failure during a dump
type ElementFailure struct {
	// Callback is the name of the callback, i.e. net_logic
	Callback string
	Element  string
	Err      error
}

func (f ElementFailure) Error() string {
	if f.Element == "" {
		return fmt.Sprintf("%s: %s", f.Callback, f.Err)
	}

	return fmt.Sprintf("%s %s: %s", f.Callback, f.Element, f.Err)
}

func (f ElementFailure) Unwrap() error {
	return f.Err
}

// DumpError is returned by a host when one or more callbacks failed while
// the rest of the design was still visited
type DumpError struct {
	Design   string
	Failures []ElementFailure
}

func NewDumpError(design string) *DumpError {
	return &DumpError{Design: design, Failures: []ElementFailure{}}
}

// Append records a failed callback
func (d *DumpError) Append(callback, element string, err error) {
	d.Failures = append(d.Failures, ElementFailure{Callback: callback, Element: element, Err: err})
}

func (d *DumpError) Error() string {
	err := strings.Builder{}
	err.WriteString(fmt.Sprintf("%d callback(s) failed for design %s", len(d.Failures), d.Design))

	for _, f := range d.Failures {
		err.WriteString("\n  " + f.Error())
	}

	return err.String()
}

func (d *DumpError) Unwrap() []error {
	errs := make([]error, len(d.Failures))
	for i, f := range d.Failures {
		errs[i] = f
	}

	return errs
}
