package chat

import (
	"context"

	"chatmate-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Answer processes one visitor message: routes it through the
	// meeting dialogue, task detection and persona answering, and
	// returns the assistant's reply.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)

	// UpdatePrompt replaces the owner's knowledge-base prompt on the
	// backend.
	UpdatePrompt(ctx context.Context, sc model.Scope, content string) error
}
