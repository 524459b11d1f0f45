package service

import "errors"

var (
	// ErrUserNotFound means the operation targeted an email with no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken means registration targeted an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials means the login password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidPlan means an unknown subscription plan tier was requested.
	ErrInvalidPlan = errors.New("invalid subscription plan")
)
