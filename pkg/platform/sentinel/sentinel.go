package sentinel

import "errors"

// Storage facts. Stores return these, possibly wrapped, and services map
// them onto domain errors. Validation failures belong in pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used") // unique key such as a DIN already taken
	ErrConflict    = errors.New("conflict")     // record changed since it was read
)
