package sqlite

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidTableName indicates a table name that is not a plain identifier.
var ErrInvalidTableName = errors.New("invalid table name")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTableName accepts only plain SQL identifiers.
func ValidateTableName(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, name)
	}
	return nil
}
