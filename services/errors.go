package services

import "errors"

// Sentinel errors controllers map onto HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("already taken")
	ErrForbidden          = errors.New("not allowed")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
