package domain

import "errors"

// Categorias de erro compartilhadas entre os casos de uso
var (
	ErrValidation        = errors.New("validation error")
	ErrResolution        = errors.New("column resolution error")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedSource   = errors.New("malformed source")
	ErrArithmetic        = errors.New("arithmetic error")
)
