package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
)

// Store errors. Both wrap the underlying I/O or decode error; match with errors.Is.
var (
	ErrStoreCorrupt     = errors.New("data store corrupt")
	ErrStoreUnavailable = errors.New("data store unavailable")
)

// CompletionAward is the number of points granted the first time a user
// completes a material.
const CompletionAward = 10
