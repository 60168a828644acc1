package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSnapshotMalformed indicates that a seed snapshot file could not be
// decoded into the data model.
var ErrSnapshotMalformed = errors.New("snapshot malformed")
