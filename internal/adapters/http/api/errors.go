package api

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrLimitExceeded = errors.New("limit exceeded")
)

// parseLimit reads a required limit in [1, max].
func parseLimit(raw string, max int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest)
	}
	if n > max {
		return 0, fmt.Errorf("%w: limit must be at most %d", ErrLimitExceeded, max)
	}
	return n, nil
}
