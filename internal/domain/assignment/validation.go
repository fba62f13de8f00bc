package assignment

import (
	"strconv"
	"time"
)

// Clock returns the current time. Open-ended assignments end on the clock's calendar date.
type Clock func() time.Time

// Validator turns raw rows into assignments.
type Validator struct {
	now Clock
}

// NewValidator creates a validator. A nil clock falls back to time.Now.
func NewValidator(now Clock) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Today returns the validator's current calendar date at UTC midnight.
func (v *Validator) Today() time.Time {
	y, m, d := v.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate parses a raw row. Failures are returned as *RowError.
func (v *Validator) Validate(row RawRow) (Assignment, error) {
	employeeID, err := parseID(row, 0)
	if err != nil {
		return Assignment{}, &RowError{Row: row, Field: "employee id", Err: err}
	}
	projectID, err := parseID(row, 1)
	if err != nil {
		return Assignment{}, &RowError{Row: row, Field: "project id", Err: err}
	}

	raw, ok := row.Field(2)
	if !ok {
		return Assignment{}, &RowError{Row: row, Field: "date from", Err: ErrMalformedDate}
	}
	from, err := ParseDate(raw)
	if err != nil {
		return Assignment{}, &RowError{Row: row, Field: "date from", Err: err}
	}

	to := v.Today()
	if raw, ok := row.Field(3); ok && !IsOpenEnded(raw) {
		to, err = ParseDate(raw)
		if err != nil {
			return Assignment{}, &RowError{Row: row, Field: "date to", Err: err}
		}
	}

	return Assignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   from,
		DateTo:     to,
	}, nil
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// IsOpenEnded reports whether a raw end date means "still ongoing".
func IsOpenEnded(raw string) bool {
	return raw == "" || raw == OpenEndedToken
}

func parseID(row RawRow, i int) (int64, error) {
	raw, ok := row.Field(i)
	if !ok {
		return 0, ErrMalformedIdentifier
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrMalformedIdentifier
	}
	return id, nil
}
