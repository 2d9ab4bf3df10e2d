package model

import "time"

// MessageType distinguishes user and bot turns.
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageBot  MessageType = "bot"
)

// BotIntent tags a bot message with the dialogue state it elicits.
// Recording the intent explicitly (instead of substring-matching the
// rendered reply text later) keeps the meeting state machine immune to
// wording changes.
type BotIntent string

const (
	IntentNone                 BotIntent = ""
	IntentAwaitingDetails      BotIntent = "awaiting_details"
	IntentAwaitingConfirm      BotIntent = "awaiting_confirmation"
	IntentAwaitingFinalConfirm BotIntent = "awaiting_final_confirmation"
)

// ConversationMessage is one turn of a chat session. Ordered, append-only,
// persisted client-side and echoed back with each request.
type ConversationMessage struct {
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Intent    BotIntent   `json:"intent,omitempty"`
	Timestamp time.Time   `json:"timestamp,omitempty"`
}

// OwnerProfile is the assistant owner's knowledge base and persona data.
type OwnerProfile struct {
	Username      string         `json:"username"`
	Name          string         `json:"name"`
	Prompt        string         `json:"prompt"`
	UserPrompt    string         `json:"userPrompt"`
	DailyTasks    string         `json:"dailyTasks"`
	Contributions []Contribution `json:"contributions"`
}

// Contribution is one community-submitted Q/A pair in the owner's
// knowledge base. Only approved entries feed the persona prompt.
type Contribution struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

// ContributionApproved is the status required before a contribution is
// used to answer questions.
const ContributionApproved = "approved"

// VisitorProfile is the person chatting with the assistant.
type VisitorProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	MobileNo string `json:"mobileNo,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	IsGuest  bool   `json:"isGuest"`
}
