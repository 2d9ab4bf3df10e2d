package chat

import "chatmate-assistant/internal/model"

// AnswerInput is the input for answering one visitor message.
type AnswerInput struct {
	Question string
	Owner    model.OwnerProfile
	// Visitor is nil for anonymous users who never logged in; guests
	// are present but flagged.
	Visitor *model.VisitorProfile
	History []model.ConversationMessage
}

// AnswerOutput is the assistant's reply plus bookkeeping the client
// echoes back on the next turn.
type AnswerOutput struct {
	Reply string
	// Intent tags the reply so the next request can resume the meeting
	// dialogue without matching reply text.
	Intent model.BotIntent
	// TaskID is set when the turn created a task or scheduled a meeting.
	TaskID string
}
