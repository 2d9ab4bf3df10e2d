package usecase

import (
	"context"
	"fmt"
	"strings"

	"chatmate-assistant/internal/model"
	"chatmate-assistant/pkg/gemini"
)

// extractTopic summarizes what the conversation is about in a few words.
// Returns "" when there is not enough history or the LLM fails; callers
// substitute DefaultTopic where a topic is required.
func (uc *implUseCase) extractTopic(ctx context.Context, history []model.ConversationMessage, question string) string {
	if len(history) < 2 {
		return ""
	}

	urlSection := ""
	if urls := extractURLs(question); len(urls) > 0 {
		urlSection = fmt.Sprintf("URLs mentioned: %s\n", strings.Join(urls, " "))
	}

	prompt := fmt.Sprintf(PromptExtractTopic, formatHistory(lastN(history, 5)), question, urlSection)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: TopicTemperature,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: topic extraction failed: %v", LogPrefixTopic, err)
		return ""
	}

	return strings.TrimSpace(resp.Text())
}
