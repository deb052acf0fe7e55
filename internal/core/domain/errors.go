package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidID          = errors.New("invalid id")
	ErrNewsNotFound       = errors.New("news not found")

	// Classification adapter errors.
	ErrModelNotReady = errors.New("model not ready")
	ErrNotAnImage    = errors.New("file is not an image")
	ErrBatchTooLarge = errors.New("too many files in batch")
)
