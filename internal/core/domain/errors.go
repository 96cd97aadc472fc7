package domain

import "errors"

// Sentinel errors surfaced to the transport layer. All are recoverable
// request errors; none should terminate the process.
var (
	// ErrInvalidTimeFormat marks an instant string that is not ISO-8601
	// UTC with an explicit offset. Naive timestamps are rejected rather
	// than silently assumed to be UTC.
	ErrInvalidTimeFormat = errors.New("invalid time format: use ISO 8601 UTC, e.g. 2024-01-01T02:30:00Z")

	// ErrInvalidWindow marks an event or batch query whose end does not
	// come strictly after its start.
	ErrInvalidWindow = errors.New("invalid window: end must be after start")

	// ErrInvalidStep marks a non-positive batch step.
	ErrInvalidStep = errors.New("invalid step: must be positive")

	// ErrTooManyFrames marks a step/window combination that would exceed
	// the configured frame cap.
	ErrTooManyFrames = errors.New("too many frames: narrow the window or increase the step")

	// ErrInvalidFOV marks a non-positive field-of-view extent or target
	// resolution.
	ErrInvalidFOV = errors.New("invalid field of view: extents and resolution must be positive")

	// ErrNotFound marks an unknown star or constellation name.
	ErrNotFound = errors.New("not found")
)
