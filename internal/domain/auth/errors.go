package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee number or password")
	ErrAccountLocked      = errors.New("too many failed attempts, please try again later")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrLoginNotFound      = errors.New("employee login not found")
	ErrTokenConflict      = errors.New("login token changed concurrently")
)
