package dialogue

import (
	"testing"

	"chatmate-assistant/internal/model"
)

func bot(content string, intent model.BotIntent) model.ConversationMessage {
	return model.ConversationMessage{Type: model.MessageBot, Content: content, Intent: intent}
}

func user(content string) model.ConversationMessage {
	return model.ConversationMessage{Type: model.MessageUser, Content: content}
}

func TestIsConfirmation(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"yes", true},
		{"Yes", true},
		{"  YES  ", true},
		{"yes please", true},
		{"sounds good, yes", true},
		{"go ahead yes", true},
		{"okay", true},
		{"yep", true},
		{"sure thing", true},
		{"confirm", true},
		{"yesterday", false},
		{"yesterday at 5pm", false},
		{"can we do 5pm yesterday", false},
		{"not yet", false},
		{"maybe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := IsConfirmation(tt.message); got != tt.want {
				t.Errorf("IsConfirmation(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsNegative(t *testing.T) {
	if !IsNegative("no") || !IsNegative("cancel that") || !IsNegative("nevermind") {
		t.Errorf("expected negative detection")
	}
	if IsNegative("november works") {
		t.Errorf("'november' must not read as 'no'")
	}
}

func TestProcess_TaggedIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		history []model.ConversationMessage
		want    State
	}{
		{
			name:    "Empty history",
			message: "yes",
			history: nil,
			want:    StateNone,
		},
		{
			name:    "Previous turn is a user message",
			message: "yes",
			history: []model.ConversationMessage{user("hello")},
			want:    StateNone,
		},
		{
			name:    "Awaiting details accepts any answer",
			message: "tomorrow at 3pm for 30 minutes",
			history: []model.ConversationMessage{user("let's meet"), bot("Please share the date, time and duration.", model.IntentAwaitingDetails)},
			want:    StateDetailsProvided,
		},
		{
			name:    "Awaiting confirmation with yes",
			message: "yes",
			history: []model.ConversationMessage{user("let's meet"), bot("Do you want to meet about this?", model.IntentAwaitingConfirm)},
			want:    StateConfirmed,
		},
		{
			name:    "Awaiting confirmation with yesterday",
			message: "yesterday",
			history: []model.ConversationMessage{user("let's meet"), bot("Do you want to meet about this?", model.IntentAwaitingConfirm)},
			want:    StateNone,
		},
		{
			name:    "Awaiting final confirmation with okay",
			message: "okay",
			history: []model.ConversationMessage{user("yes"), bot("Scheduling for tomorrow 15:00, confirm?", model.IntentAwaitingFinalConfirm)},
			want:    StateFinalConfirmation,
		},
		{
			name:    "Awaiting final confirmation without token",
			message: "actually make it an hour",
			history: []model.ConversationMessage{user("yes"), bot("Scheduling for tomorrow 15:00, confirm?", model.IntentAwaitingFinalConfirm)},
			want:    StateNone,
		},
		{
			name:    "Untagged bot reply with no known phrasing",
			message: "yes",
			history: []model.ConversationMessage{user("hi"), bot("I build web services.", model.IntentNone)},
			want:    StateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Process(tt.message, tt.history); got != tt.want {
				t.Errorf("Process() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProcess_LegacyPhraseFallback(t *testing.T) {
	tests := []struct {
		name    string
		message string
		content string
		want    State
	}{
		{
			name:    "Details request phrase",
			message: "3pm tomorrow, 45 minutes",
			content: "Please provide the following details for your meeting: Date, Time and Duration of the meet.",
			want:    StateDetailsProvided,
		},
		{
			name:    "Initial confirmation phrase",
			message: "yes",
			content: "Are you sure you want to have a meeting with Alice about the roadmap?",
			want:    StateConfirmed,
		},
		{
			name:    "Final confirmation phrase",
			message: "yes",
			content: "I will be scheduling a meeting with Alice about roadmap on 2025-06-02 at 15:00 for 30 minutes. Do you want to confirm this? Press yes to confirm.",
			want:    StateFinalConfirmation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []model.ConversationMessage{user("let's meet"), bot(tt.content, model.IntentNone)}
			if got := Process(tt.message, history); got != tt.want {
				t.Errorf("Process() = %v, want %v", got, tt.want)
			}
		})
	}
}
