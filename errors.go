package guibridge

import "fmt"

// ContextCreationError reports that the rendering backend could not create a
// graphics context for the window (version/profile mismatch, missing driver).
// It is fatal to the window-open sequence: the builder aborts construction
// rather than fall back to a degraded context.
type ContextCreationError struct {
	Cause error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("graphics context creation failed: %v", e.Cause)
}

func (e *ContextCreationError) Unwrap() error { return e.Cause }

// RenderError reports a failure while submitting or presenting a frame.
// A partially submitted frame cannot be resumed, so a RenderError is fatal to
// the window session: the driver destroys the backend and closes.
type RenderError struct {
	Stage string // failing stage: "upload", "draw", "present"
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at %s: %v", e.Stage, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }
