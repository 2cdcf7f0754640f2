package order

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("bad request")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func IsErrNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool        { return errors.Is(err, ErrBadRequest) }
func IsErrInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }
