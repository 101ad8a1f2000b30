package domain

import "errors"

var (
	// ErrValidation marks a missing or malformed request field.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream marks a failed call to an external provider.
	ErrUpstream = errors.New("upstream request failed")
	// ErrSynthesis marks any failure of the speech synthesis bridge.
	ErrSynthesis = errors.New("speech synthesis failed")
	// ErrNotFound is returned by stores for unknown keys.
	ErrNotFound = errors.New("not found")
)
