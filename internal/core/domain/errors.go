package domain

import "fmt"

// ValidationError reports invalid caller input, such as an empty document or
// a scaled size that degenerates to zero pixels.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// RenderError reports that the rasterization engine rejected or could not
// parse the document.
type RenderError struct {
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("invalid SVG: %v", e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// EncodeError reports a PNG construction failure after a successful render.
// By this stage all inputs have passed validation, so it is a server fault.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("png encoding failed: %v", e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// ConversionFailure distinguishes why an external conversion failed.
type ConversionFailure int

const (
	// SpawnFailure means the external binary could not be started at all,
	// usually a misconfigured host rather than a bad document.
	SpawnFailure ConversionFailure = iota
	// ProcessFailure means the process ran but exited non-zero or produced
	// no output.
	ProcessFailure
)

// ConversionError reports a failure on the external transparency path.
type ConversionError struct {
	Kind  ConversionFailure
	Cause error
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case SpawnFailure:
		return fmt.Sprintf("could not start converter: %v", e.Cause)
	default:
		return fmt.Sprintf("conversion failed: %v", e.Cause)
	}
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
