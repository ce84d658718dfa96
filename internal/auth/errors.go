package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrNotLoggedIn  = errors.New("no user is logged in")
	ErrEmptyEmail   = errors.New("email is empty")
	ErrEmptyName    = errors.New("name is empty")
	ErrInvalidEmail = errors.New("email is not a valid address")
)
