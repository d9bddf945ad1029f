package database

import "github.com/cockroachdb/errors"

// Sentinel errors shared by the repositories. Handlers match with
// errors.Is and map them onto the API's JSON error shape.
var (
	// ErrNotFound covers both genuinely missing rows and rows the caller
	// is not allowed to touch; ownership failures are indistinguishable
	// from non-existence on purpose.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate reports a unique-constraint violation (email already
	// registered, duplicate application, job already saved).
	ErrDuplicate = errors.New("duplicate record")
)
