package http

import "chatmate-assistant/internal/model"

// answerRequest is the body for POST /api/v1/chat/answer. The client
// keeps the conversation history and echoes it back each turn, intents
// included.
type answerRequest struct {
	Question string                      `json:"question" binding:"required"`
	Owner    model.OwnerProfile          `json:"owner" binding:"required"`
	Visitor  *model.VisitorProfile       `json:"visitor,omitempty"`
	History  []model.ConversationMessage `json:"history,omitempty"`
}

type answerResponse struct {
	Reply  string          `json:"reply"`
	Intent model.BotIntent `json:"intent,omitempty"`
	TaskID string          `json:"taskId,omitempty"`
}

// updatePromptRequest is the body for POST /api/v1/prompt.
type updatePromptRequest struct {
	Content string `json:"content" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}
