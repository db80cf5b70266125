package errors

import "errors"

var (
	ErrUpstream = errors.New("upstream table store failure")
	ErrInvalid  = errors.New("invalid")
)

func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}
