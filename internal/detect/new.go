package detect

import (
	"context"

	"chatmate-assistant/pkg/gemini"
	"chatmate-assistant/pkg/log"
)

// Detector is the interface for task/meeting request detection
type Detector interface {
	Detect(ctx context.Context, message string, conversationContext string) (Detection, error)
}

// LLMDetector classifies chat messages using the LLM
type LLMDetector struct {
	llm gemini.Generator
	l   log.Logger
}

// Ensure LLMDetector implements Detector interface
var _ Detector = (*LLMDetector)(nil)

// New creates a new LLMDetector
func New(llm gemini.Generator, l log.Logger) *LLMDetector {
	return &LLMDetector{
		llm: llm,
		l:   l,
	}
}
