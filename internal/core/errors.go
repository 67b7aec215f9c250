package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration reports a non-positive pixel size, interval or
	// grid dimension. Construction does not complete.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrContextUnavailable reports that GPU or rendering resources could not
	// be acquired. No partially constructed instance is returned.
	ErrContextUnavailable = errors.New("rendering context unavailable")

	// ErrIndexOutOfBounds is raised (as a panic) when a cell outside the grid
	// is addressed. It marks a defect, not a runtime condition.
	ErrIndexOutOfBounds = errors.New("cell index out of bounds")
)

// ContextUnavailable wraps a backend failure so that errors.Is matches both
// ErrContextUnavailable and cause.
func ContextUnavailable(cause error, format string, args ...any) error {
	return &contextError{cause: cause, msg: fmt.Sprintf(format, args...)}
}

type contextError struct {
	cause error
	msg   string
}

func (e *contextError) Error() string {
	return e.msg + ": " + ErrContextUnavailable.Error() + ": " + e.cause.Error()
}

func (e *contextError) Cause() error  { return e.cause }
func (e *contextError) Unwrap() error { return e.cause }

func (e *contextError) Is(target error) bool { return target == ErrContextUnavailable }
