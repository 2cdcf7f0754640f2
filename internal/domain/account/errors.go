package account

import "errors"

// Sentinels mirror the callable surface's error codes.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
)

func IsErrUnauthenticated(err error) bool  { return errors.Is(err, ErrUnauthenticated) }
func IsErrInvalidArgument(err error) bool  { return errors.Is(err, ErrInvalidArgument) }
func IsErrAlreadyExists(err error) bool    { return errors.Is(err, ErrAlreadyExists) }
func IsErrNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsErrPermissionDenied(err error) bool { return errors.Is(err, ErrPermissionDenied) }
