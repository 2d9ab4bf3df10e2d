package detect

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"chatmate-assistant/pkg/gemini"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// Detect determines whether the message asks for a future task or a
// meeting. Errors from the LLM degrade to "not a task" so the caller
// can still answer conversationally.
func (d *LLMDetector) Detect(ctx context.Context, message string, conversationContext string) (Detection, error) {
	prompt := PromptDetectTask
	if conversationContext != "" {
		prompt += PromptHistoryPrefix + conversationContext + "\n\n"
	}
	prompt += fmt.Sprintf("User message: %q", message)

	resp, err := d.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: DetectTemperature,
		},
	})
	if err != nil {
		d.l.Warnf(ctx, "%s: LLM call failed, treating as conversation: %v", LogPrefixDetect, err)
		return Detection{}, nil
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		d.l.Warnf(ctx, "%s: empty LLM response, treating as conversation", LogPrefixDetect)
		return Detection{}, nil
	}

	isTask := strings.HasPrefix(strings.ToUpper(responseText), "YES")
	lowerResp := strings.ToLower(responseText)
	lowerMsg := strings.ToLower(message)
	isMeeting := isTask &&
		(strings.Contains(lowerResp, "meeting") ||
			strings.Contains(lowerResp, "call") ||
			strings.Contains(lowerMsg, "meet") ||
			strings.Contains(lowerMsg, "call"))

	description := ""
	if isTask {
		lines := strings.SplitN(responseText, "\n", 2)
		if len(lines) > 1 {
			description = strings.TrimSpace(strings.ReplaceAll(lines[1], "\n", " "))
		}
	}
	if description == "" {
		description = DefaultTaskDescription
	}

	urls := urlPattern.FindAllString(message, -1)
	if isTask && len(urls) > 0 && !containsAny(description, urls) {
		description += " - Links: " + strings.Join(urls, " ")
	}

	out := Detection{
		IsTask:           isTask,
		IsMeetingRequest: isMeeting,
		TaskDescription:  description,
		URLs:             urls,
	}
	d.l.Infof(ctx, "%s: isTask=%v isMeeting=%v", LogPrefixDetect, out.IsTask, out.IsMeetingRequest)
	return out, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
