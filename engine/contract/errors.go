package contract

import "errors"

var (
	ErrUnknownToken   = errors.New("unknown selection token")
	ErrMalformedToken = errors.New("malformed selection token")
	ErrValidation     = errors.New("validation failed")
)
