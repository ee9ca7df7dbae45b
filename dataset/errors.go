package dataset

import "github.com/pkg/errors"

// Failure classes shared by the table, split and loader operations. Callers
// match them with errors.Is; the wrapped message carries the detail.
var (
	// ErrNotFound is returned when a named column (or an input file further up
	// the stack) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned when a row range exceeds the table bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned for a zero batch size, a test ratio
	// outside [0, 1], or mismatched feature/target lengths.
	ErrInvalidArgument = errors.New("invalid argument")
)
