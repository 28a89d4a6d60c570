package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrSessionRevoked     = errors.New("session has been logged out")
)
