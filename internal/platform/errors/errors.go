package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrIO           = errors.New("questions file unreadable")
	ErrFormat       = errors.New("invalid questions format")
	ErrNoQuestions  = errors.New("no valid questions loaded")
	ErrInputClosed  = errors.New("input closed before an answer was given")
)
