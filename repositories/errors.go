package repositories

import "errors"

// ErrNotFound is returned by every repository when the addressed document
// does not exist.
var ErrNotFound = errors.New("document not found")
