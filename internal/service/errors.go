package service

import "errors"

var (
	// ErrInvalidPrompt rejects a turn before any rate or history mutation.
	ErrInvalidPrompt = errors.New("invalid or missing prompt")

	// ErrRateLimited rejects a turn whose client exceeded its window.
	ErrRateLimited = errors.New("rate limit exceeded")
)
