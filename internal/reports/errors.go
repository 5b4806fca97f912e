package reports

import "errors"

var (
	// ErrUnknownFormat is returned for an output format that has no renderer.
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrNoFormats is returned when a runner is asked to write nothing.
	ErrNoFormats = errors.New("no report formats")
)
