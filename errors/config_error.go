package errors

import "strings"

// ConfigError collects the errors encountered while reading a design file
type ConfigError struct {
	// ParseErrors is a list of errors that were encountered while reading the
	// HCL syntax of the file
	ParseErrors []error

	// ProcessErrors is a list of errors that were encountered while building
	// the design from the decoded blocks, i.e. an unknown gate type
	ProcessErrors []error
}

func NewConfigError() *ConfigError {
	return &ConfigError{
		ParseErrors:   []error{},
		ProcessErrors: []error{},
	}
}

// AppendParseError adds a new parse error to the list of errors
func (p *ConfigError) AppendParseError(err error) {
	p.ParseErrors = append(p.ParseErrors, err)
}

// AppendProcessError adds a new process error to the list of errors
func (p *ConfigError) AppendProcessError(err error) {
	p.ProcessErrors = append(p.ProcessErrors, err)
}

// HasErrors returns true when any error has been recorded
func (p *ConfigError) HasErrors() bool {
	return len(p.ParseErrors) > 0 || len(p.ProcessErrors) > 0
}

// Error pretty prints the error message as a string
func (p *ConfigError) Error() string {
	err := strings.Builder{}

	for _, e := range p.ParseErrors {
		err.WriteString(e.Error() + "\n")
	}

	for _, e := range p.ProcessErrors {
		err.WriteString(e.Error() + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}

// Unwrap exposes every recorded error to errors.Is and errors.As
func (p *ConfigError) Unwrap() []error {
	all := make([]error, 0, len(p.ParseErrors)+len(p.ProcessErrors))
	all = append(all, p.ParseErrors...)
	return append(all, p.ProcessErrors...)
}
