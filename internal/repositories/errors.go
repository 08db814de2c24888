package repositories

import "errors"

// ErrNotFound marks a lookup whose target does not exist. Implementations
// wrap it with the entity and id so services can distinguish absence from a
// storage failure with errors.Is.
var ErrNotFound = errors.New("record not found")
