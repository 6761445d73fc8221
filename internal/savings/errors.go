package savings

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrUnrecognizedFrequency = errors.New("unrecognized frequency")
)
