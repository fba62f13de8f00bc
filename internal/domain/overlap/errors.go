package overlap

import "errors"

// ErrNoSource indicates Analyze was called without a row source.
var ErrNoSource = errors.New("no row source")
