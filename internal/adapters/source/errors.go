package source

import "errors"

var (
	// ErrFetch is returned when the upstream responds with a non-2xx status
	// or cannot be reached.
	ErrFetch = errors.New("fetch failed")
	// ErrUnknownKey is returned when no URL is configured for a key.
	ErrUnknownKey = errors.New("no url configured for key")
	// ErrInvalidKey is returned for keys that are not plain file names.
	ErrInvalidKey = errors.New("invalid cache key")
	// ErrEmptySource is returned when the raw file has no header row.
	ErrEmptySource = errors.New("source is empty")
)
