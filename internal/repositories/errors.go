package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a lookup misses, so that
// callers can classify the failure with errors.Is without matching message
// strings.
var ErrNotFound = errors.New("record not found")
