package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"chatmate-assistant/internal/model"
	"chatmate-assistant/pkg/gemini"
)

var (
	dateFieldPattern     = regexp.MustCompile(`"date":\s*"(\d{4}-\d{2}-\d{2})"`)
	timeFieldPattern     = regexp.MustCompile(`"time":\s*"(\d{2}:\d{2})"`)
	durationFieldPattern = regexp.MustCompile(`"duration":\s*"?(\d+)`)

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// rawMeeting tolerates the LLM returning duration as either a number or
// a quoted string.
type rawMeeting struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Duration    json.Number `json:"duration"`
}

// extractMeetingDetails pulls structured meeting fields out of free
// text. Constrained JSON output does most of the work; malformed
// replies go through per-field regex repair, then clock-relative
// parsing of the original message as a last resort. Returns nil when
// nothing could be extracted.
func (uc *implUseCase) extractMeetingDetails(ctx context.Context, message string) *model.MeetingDetails {
	now := uc.now().In(uc.dateMath.Location())
	prompt := fmt.Sprintf(PromptExtractMeeting, now.Format("2006-01-02"), now.Format("15:04"), message)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      ExtractTemperature,
			ResponseMIMEType: gemini.MIMETypeJSON,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixExtract, err)
		return uc.recoverFromMessage(message)
	}

	cleaned := sanitizeJSONResponse(resp.Text())

	var raw rawMeeting
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		uc.l.Warnf(ctx, "%s: JSON parse failed, trying field repair: %v", LogPrefixExtract, err)
		if details := repairFields(cleaned); details != nil {
			return details
		}
		return uc.recoverFromMessage(message)
	}

	details := &model.MeetingDetails{
		Title:       nullsafe(raw.Title),
		Description: nullsafe(raw.Description),
	}
	if datePattern.MatchString(raw.Date) {
		details.Date = raw.Date
	}
	if timePattern.MatchString(raw.Time) {
		details.Time = raw.Time
	}
	if d, err := raw.Duration.Int64(); err == nil && d > 0 {
		details.Duration = int(d)
	}

	if details.Date == "" && details.Time == "" && details.Duration == 0 && details.Title == "" {
		return uc.recoverFromMessage(message)
	}
	return details
}

// repairFields salvages well-formed fields from a malformed JSON reply.
func repairFields(text string) *model.MeetingDetails {
	details := &model.MeetingDetails{}
	if m := dateFieldPattern.FindStringSubmatch(text); m != nil {
		details.Date = m[1]
	}
	if m := timeFieldPattern.FindStringSubmatch(text); m != nil {
		details.Time = m[1]
	}
	if m := durationFieldPattern.FindStringSubmatch(text); m != nil {
		fmt.Sscanf(m[1], "%d", &details.Duration)
	}
	if details.Date == "" && details.Time == "" && details.Duration == 0 {
		return nil
	}
	return details
}

// recoverFromMessage resolves clock-relative phrases ("in 30 minutes",
// "next hour") straight from the user's message.
func (uc *implUseCase) recoverFromMessage(message string) *model.MeetingDetails {
	at, err := uc.dateMath.ParseClock(message, uc.now())
	if err != nil {
		return nil
	}
	return &model.MeetingDetails{
		Date: at.Format("2006-01-02"),
		Time: at.Format("15:04"),
	}
}

// nullsafe drops the literal "null" some models emit for absent fields.
func nullsafe(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "null") {
		return ""
	}
	return strings.TrimSpace(s)
}
