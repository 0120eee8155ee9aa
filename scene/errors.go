package scene

import (
	"errors"
	"fmt"
)

// Kind categorizes the failures of the rendering pipeline.
type Kind string

const (
	// KindInvalidDimensions reports a canvas created with a non positive extent.
	KindInvalidDimensions Kind = "InvalidDimensions"

	// KindInvalidGeometry reports a primitive with a non positive size or radius.
	KindInvalidGeometry Kind = "InvalidGeometry"

	// KindInvalidStyle reports a color or stroke setting that can't be painted.
	KindInvalidStyle Kind = "InvalidStyle"

	// KindInsufficientSpace reports a row whose content is wider than the canvas.
	KindInsufficientSpace Kind = "InsufficientSpace"

	// KindMissingContent reports a required content field left empty.
	KindMissingContent Kind = "MissingContent"

	// KindUnsupportedPrimitive reports a primitive the renderer has no rule for.
	KindUnsupportedPrimitive Kind = "UnsupportedPrimitive"

	// KindRenderTarget reports a pixel buffer that can't be allocated.
	KindRenderTarget Kind = "RenderTargetError"

	// KindIOWrite reports a failure writing the output file.
	KindIOWrite Kind = "IOWriteError"

	// KindInvalidConfig reports a configuration file which can't be read,
	// or which doesn't match the expected schema.
	KindInvalidConfig Kind = "InvalidConfig"
)

// Component names the pipeline stage an error comes from.
const (
	ComponentPrimitive = "primitive"
	ComponentCanvas    = "canvas"
	ComponentLayout    = "layout"
	ComponentRenderer  = "renderer"
	ComponentExporter  = "exporter"
	ComponentConfig    = "config"
)

// Error is the error type returned by every stage of the pipeline.
// None of them is recoverable: the caller is expected to abort the run.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Component is the stage which failed (see the Component constants).
	Component string

	// Subject is the offending input: a field name,
	// a section name or a file path.
	Subject string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Component)
	if e.Subject != "" {
		s += fmt.Sprintf(" (%s)", e.Subject)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error with a formatted message.
func Errorf(kind Kind, component, subject, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Component: component, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error around an underlying cause.
func Wrap(kind Kind, component, subject string, err error) *Error {
	return &Error{Kind: kind, Component: component, Subject: subject, Err: err}
}

// IsKind returns true if err, or an error it wraps, is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
