package model

import (
	"errors"
	"fmt"
)

// Sentinel kinds for domain errors. The typed errors below match them with
// errors.Is.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrNumericFormat = errors.New("invalid numeric field")
	ErrNotFound      = errors.New("not found")
)

// MissingFieldError reports a retained row lacking a required field.
type MissingFieldError struct {
	Field    string
	PlayerID string
}

func (e *MissingFieldError) Error() string {
	playerID := e.PlayerID
	if playerID == "" {
		playerID = "unavailable"
	}
	return fmt.Sprintf("missing required field %q for player %s", e.Field, playerID)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// NumericFormatError reports a present field that failed numeric parsing.
type NumericFormatError struct {
	Field    string
	Raw      string
	PlayerID string
	Err      error
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("field %q has non-numeric value %q (player %s): %v", e.Field, e.Raw, e.PlayerID, e.Err)
}

// Is reports whether target is ErrNumericFormat.
func (e *NumericFormatError) Is(target error) bool { return target == ErrNumericFormat }

// Unwrap returns the underlying parse error.
func (e *NumericFormatError) Unwrap() error { return e.Err }

// LookupError reports a query for an id that does not exist.
type LookupError struct {
	Kind string
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *LookupError) Is(target error) bool { return target == ErrNotFound }
