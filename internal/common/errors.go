package common

import "errors"

// Session errors. Callers wrap them as precondition failures so the REPL
// prints the message as is.
var (
	ErrNotLoggedIn  = errors.New("you must be logged in")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
