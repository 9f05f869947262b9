package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login failures stay uniform.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidFile        = errors.New("invalid file format")
	ErrFileTooLarge       = errors.New("file size too large")
)
