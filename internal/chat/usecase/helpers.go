package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"chatmate-assistant/internal/model"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// extractURLs returns all URLs in the message, in order of appearance.
func extractURLs(message string) []string {
	return urlPattern.FindAllString(message, -1)
}

// lastN returns the trailing n messages of the history.
func lastN(history []model.ConversationMessage, n int) []model.ConversationMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// formatHistory renders messages as "User:"/"Assistant:" lines for
// prompt context.
func formatHistory(history []model.ConversationMessage) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Assistant"
		if msg.Type == model.MessageUser {
			speaker = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}
	return strings.Join(lines, "\n\n")
}

// lastUserMessage walks the history backwards for the most recent user
// message whose content differs from the current question.
func lastUserMessage(history []model.ConversationMessage, current string) string {
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Type == model.MessageUser && msg.Content != current {
			return msg.Content
		}
	}
	return ""
}

// sanitizeJSONResponse strips markdown code fences and a leading "json"
// tag from an LLM reply.
func sanitizeJSONResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	if strings.HasPrefix(cleaned, "json") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "json"))
	}
	return cleaned
}

// groupLinks buckets URLs into repository, deployment and other links
// for the task description.
func groupLinks(urls []string) (github, deployment, other []string) {
	for _, u := range urls {
		switch {
		case strings.Contains(u, "github.com"):
			github = append(github, u)
		case strings.Contains(u, "leetcode.com"):
			other = append(other, u)
		default:
			deployment = append(deployment, u)
		}
	}
	return github, deployment, other
}

// approvedKnowledgeBase renders the owner's approved contributions for
// the persona prompt.
func approvedKnowledgeBase(contributions []model.Contribution) string {
	var approved []model.Contribution
	for _, c := range contributions {
		if c.Status == model.ContributionApproved {
			approved = append(approved, c)
		}
	}
	if len(approved) == 0 {
		return "No specific approved contributions yet."
	}

	var b strings.Builder
	b.WriteString("This is my personal knowledge base of verified information. You can use this to answer the questions:\n")
	for i, c := range approved {
		fmt.Fprintf(&b, "[%d] Question: %s\nAnswer: %s\n\n", i+1, c.Question, c.Answer)
	}
	return strings.TrimSpace(b.String())
}
