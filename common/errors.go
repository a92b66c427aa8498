package common

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is the only domain error the services raise. It carries
// the identifiers that failed to resolve so the transport layer can
// surface them in the 404 body.
type NotFoundError struct {
	Message string
	IDs     []uint
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return e.Message
	}
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return e.Message + " " + strings.Join(ids, ", ")
}

// NewNotFound builds a NotFoundError for the given ids.
func NewNotFound(message string, ids ...uint) *NotFoundError {
	return &NotFoundError{Message: message, IDs: ids}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
