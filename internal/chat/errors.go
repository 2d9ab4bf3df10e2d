package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptyContent  = errors.New("prompt content is empty")
	ErrMissingOwner  = errors.New("owner profile is missing")
)
