package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorises a failure reported by a target callback
type Kind string

const (
	// KindConfiguration is returned when a required design option is missing
	KindConfiguration Kind = "configuration"
	// KindIO is returned when the output sink can not be opened, written or closed
	KindIO Kind = "io"
	// KindUnsupported is returned for a gate, process or statement the target
	// has no rendering rule for
	KindUnsupported Kind = "unsupported_construct"
	// KindState is returned when a callback arrives outside the active state
	KindState Kind = "state"
)

// TargetError is returned by the callbacks of a target module
type TargetError struct {
	Kind Kind
	// Element is the name of the design element, empty for design level errors
	Element string
	Message string
	Err     error
}

// NewConfigurationError is returned when the design does not define option
func NewConfigurationError(option string) *TargetError {
	return &TargetError{
		Kind:    KindConfiguration,
		Message: fmt.Sprintf("required option %q is not set, unable to determine the output file", option),
	}
}

// NewIOError wraps an error from the output sink
func NewIOError(path string, err error) *TargetError {
	return &TargetError{
		Kind:    KindIO,
		Element: path,
		Message: "unable to write output",
		Err:     err,
	}
}

// NewUnsupportedError is returned for a construct with no rendering rule
func NewUnsupportedError(element, construct string) *TargetError {
	return &TargetError{
		Kind:    KindUnsupported,
		Element: element,
		Message: fmt.Sprintf("unsupported %s", construct),
	}
}

// NewStateError is returned when callback is invoked in the wrong state
func NewStateError(callback, state string) *TargetError {
	return &TargetError{
		Kind:    KindState,
		Message: fmt.Sprintf("%s called while target is %s", callback, state),
	}
}

func (e *TargetError) Error() string {
	msg := e.Message
	if e.Element != "" {
		msg = fmt.Sprintf("%s: %s", e.Element, msg)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}

	return msg
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first TargetError in the chain of err
// or an empty Kind when err does not contain one
func KindOf(err error) Kind {
	var te *TargetError
	if stderrors.As(err, &te) {
		return te.Kind
	}

	return ""
}

// IsKind returns true when the chain of err contains a TargetError of kind k
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
