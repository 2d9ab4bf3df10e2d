package usecase

import (
	"context"
	"fmt"
	"strings"

	"chatmate-assistant/internal/chat"
	"chatmate-assistant/internal/model"
)

// UpdatePrompt replaces the owner's knowledge-base prompt on the backend.
func (uc *implUseCase) UpdatePrompt(ctx context.Context, sc model.Scope, content string) error {
	if strings.TrimSpace(content) == "" {
		return chat.ErrEmptyContent
	}

	if err := uc.backend.UpdatePrompt(ctx, content, sc.OwnerID); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixUpdatePrompt, err)
	}

	uc.l.Infof(ctx, "%s: prompt updated for %s", LogPrefixUpdatePrompt, sc.OwnerID)
	return nil
}
