package assignment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedIdentifier indicates an employee or project id is not an integer.
	ErrMalformedIdentifier = errors.New("malformed identifier")
	// ErrMalformedDate indicates a date is neither YYYY-MM-DD nor the open-ended token.
	ErrMalformedDate = errors.New("malformed date")
)

// RowError ties a validation failure to the raw row that caused it.
type RowError struct {
	Row   RawRow
	Field string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s %s: [%s]", e.Row.Line, e.Field, e.Err, strings.Join(e.Row.Fields, ", "))
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Rejection converts the error into a reportable rejection.
func (e *RowError) Rejection() Rejection {
	fields := make([]string, len(e.Row.Fields))
	copy(fields, e.Row.Fields)
	return Rejection{
		Line:   e.Row.Line,
		Fields: fields,
		Reason: fmt.Sprintf("%s: %s", e.Field, e.Err),
	}
}
