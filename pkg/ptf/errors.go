package ptf

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("ptf: family root not found")
	ErrUnknownFormat   = errors.New("ptf: unknown format")
	ErrIO              = errors.New("ptf: i/o error")
	ErrTruncatedRead   = fmt.Errorf("%w: truncated read", ErrIO)
	ErrIndexOutOfRange = errors.New("ptf: index out of range")
	ErrNoCoordinates   = errors.New("ptf: state records carry no coordinates")
	ErrClosed          = fmt.Errorf("%w: family is closed", ErrIO)
)

// IOError records a failed file operation on a family member. It matches
// both its kind (one of the sentinel errors above) and the underlying cause
// with errors.Is.
type IOError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s %s", e.Kind, e.Op, e.Path)
	}
	return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, kind, err error) error {
	return &IOError{Op: op, Path: path, Kind: kind, Err: err}
}
