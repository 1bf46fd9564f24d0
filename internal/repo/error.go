package repo

import "errors"

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")

// ErrConflict is returned by conditional updates whose precondition no longer
// holds, e.g. a session rotated by a concurrent request.
var ErrConflict = errors.New("conflict")
