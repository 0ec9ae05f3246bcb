package resource

import (
	"errors"
	"io/fs"
)

// ErrNotFound is matched by every error reporting a path that does not resolve
var ErrNotFound = fs.ErrNotExist

// NotFoundError records the path that could not be resolved
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return e.Path + ": no such resource"
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// notFound converts filesystem errors for a missing file into a NotFoundError,
// and leaves any other error unchanged
func notFound(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path, Err: err}
	}
	return err
}
