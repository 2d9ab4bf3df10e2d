package dialogue

import (
	"strings"

	"chatmate-assistant/internal/model"
)

// State is the meeting-negotiation step the current user message
// advances to, derived from the intent recorded on the assistant's
// previous reply.
type State string

const (
	StateNone              State = "none"
	StateDetailsProvided   State = "details_provided"
	StateConfirmed         State = "confirmed"
	StateFinalConfirmation State = "final_confirmation"
)

var confirmationTokens = []string{"yes", "yeah", "sure", "confirm", "ok", "okay", "yep"}

var negativeTokens = []string{"no", "nope", "cancel", "nevermind", "never mind", "don't", "stop"}

// Process classifies the current user message against the previous
// assistant turn. The assistant's recorded intent drives the decision;
// untagged histories (older clients) fall back to recognising the
// literal question the assistant asked.
func Process(currentMessage string, history []model.ConversationMessage) State {
	if len(history) == 0 {
		return StateNone
	}

	prev := history[len(history)-1]
	if prev.Type != model.MessageBot {
		return StateNone
	}

	intent := prev.Intent
	if intent == model.IntentNone {
		intent = inferIntent(prev.Content)
	}

	switch intent {
	case model.IntentAwaitingDetails:
		// Any answer counts as details; the extractor decides what,
		// if anything, it contains.
		return StateDetailsProvided
	case model.IntentAwaitingConfirm:
		if IsConfirmation(currentMessage) {
			return StateConfirmed
		}
	case model.IntentAwaitingFinalConfirm:
		if IsConfirmation(currentMessage) {
			return StateFinalConfirmation
		}
	}
	return StateNone
}

// IsConfirmation reports whether the message affirms the assistant's
// question. Tokens match only standalone, as a leading word, or as a
// trailing word, so "yesterday at 5" never reads as a yes.
func IsConfirmation(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, tok := range confirmationTokens {
		if m == tok || strings.HasPrefix(m, tok+" ") || strings.HasSuffix(m, " "+tok) {
			return true
		}
	}
	return false
}

// IsNegative reports whether the message declines or abandons the
// negotiation.
func IsNegative(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, tok := range negativeTokens {
		if m == tok || strings.HasPrefix(m, tok+" ") || strings.HasSuffix(m, " "+tok) {
			return true
		}
	}
	return false
}

// inferIntent recovers the dialogue intent from the literal reply text
// for histories recorded before intents were tagged.
func inferIntent(botContent string) model.BotIntent {
	switch {
	case strings.Contains(botContent, "Please provide the following details for your meeting"):
		return model.IntentAwaitingDetails
	case strings.Contains(botContent, "want to have a meeting"),
		strings.Contains(botContent, "want to schedule a meeting"):
		return model.IntentAwaitingConfirm
	case strings.Contains(botContent, "I will be scheduling a"):
		return model.IntentAwaitingFinalConfirm
	}
	return model.IntentNone
}
