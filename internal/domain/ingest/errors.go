package ingest

import "errors"

var (
	// ErrEmptyHeader is returned for a source without a header row.
	ErrEmptyHeader = errors.New("source has no header")
	// ErrUnknownDiscipline is returned for a source not tagged batting or pitching.
	ErrUnknownDiscipline = errors.New("source discipline is unknown")
)
