package rest

import (
	"errors"
)

var errUnknownResponse = errors.New("unknown response type")

// badRequestError marks decode failures so the error encoder answers
// with a client error status.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}
