package api

import (
	"errors"
	"net/http"

	"github.com/samcharles93/ptfview/internal/familystore"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string {
	return e.msg
}

func (e invalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// classify maps an error to its HTTP status and error type.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request_error"
	case errors.Is(err, familystore.ErrUnknownFamily),
		errors.Is(err, ptf.ErrNotFound),
		errors.Is(err, ptf.ErrIndexOutOfRange):
		return http.StatusNotFound, "not_found_error"
	case errors.Is(err, familystore.ErrOutsideDataDir):
		return http.StatusForbidden, "permission_error"
	case errors.Is(err, ptf.ErrUnknownFormat),
		errors.Is(err, ptf.ErrNoCoordinates):
		return http.StatusUnprocessableEntity, "format_error"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}
