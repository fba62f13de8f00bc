package source

import "errors"

// ErrInvalidSeparator indicates the configured separator cannot delimit fields.
var ErrInvalidSeparator = errors.New("invalid separator")
