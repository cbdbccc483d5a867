package apperror

import "errors"

var (
	ErrMatchFinished  = errors.New("match is already finished")
	ErrMatchAbandoned = errors.New("match was abandoned")
	ErrMatchNotFound  = errors.New("match not found")
	ErrInputClosed    = errors.New("input is closed")
	ErrUnknownGame    = errors.New("unknown game")
)
