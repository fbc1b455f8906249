package services

import "errors"

var (
	// ErrDuplicateIdentity means a registration hit an email that already
	// has an account. The HTTP layer sends the browser to the login flow.
	ErrDuplicateIdentity = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases must not be distinguishable by the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnknownProduct = errors.New("product does not exist")

	ErrImageNotFound = errors.New("image not found")
)
