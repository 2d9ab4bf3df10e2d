package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatmate-assistant/internal/chat/pending"
	"chatmate-assistant/pkg/datemath"
	"chatmate-assistant/pkg/gemini"
)

type quietLogger struct{}

func (quietLogger) Debug(ctx context.Context, args ...any)                  {}
func (quietLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (quietLogger) Info(ctx context.Context, args ...any)                   {}
func (quietLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (quietLogger) Warn(ctx context.Context, args ...any)                   {}
func (quietLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (quietLogger) Error(ctx context.Context, args ...any)                  {}
func (quietLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (quietLogger) DPanic(ctx context.Context, args ...any)                 {}
func (quietLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (quietLogger) Panic(ctx context.Context, args ...any)                  {}
func (quietLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (quietLogger) Fatal(ctx context.Context, args ...any)                  {}
func (quietLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type cannedLLM struct {
	response string
	err      error
}

func (c *cannedLLM) GenerateContent(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: c.response}}}},
		},
	}, nil
}

func newExtractFixture(t *testing.T, llm *cannedLLM) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	uc := New(quietLogger{}, llm, nil, nil, nil, pending.NewStore(0, 0), parser)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestExtractMeetingDetails_CleanJSON(t *testing.T) {
	llm := &cannedLLM{response: `{"title": "Roadmap sync", "description": null, "date": "2025-06-02", "time": "15:00", "duration": 45}`}
	uc := newExtractFixture(t, llm)

	got := uc.extractMeetingDetails(context.Background(), "tomorrow 3pm for 45 minutes about the roadmap")
	if got == nil {
		t.Fatalf("expected details")
	}
	if got.Title != "Roadmap sync" || got.Date != "2025-06-02" || got.Time != "15:00" || got.Duration != 45 {
		t.Errorf("unexpected details: %+v", got)
	}
	if got.Description != "" {
		t.Errorf("null description must stay empty, got %q", got.Description)
	}
}

func TestExtractMeetingDetails_FencedJSON(t *testing.T) {
	llm := &cannedLLM{response: "```json\n{\"title\": null, \"description\": null, \"date\": \"2025-06-02\", \"time\": \"09:30\", \"duration\": \"30\"}\n```"}
	uc := newExtractFixture(t, llm)

	got := uc.extractMeetingDetails(context.Background(), "tomorrow morning, half an hour")
	if got == nil {
		t.Fatalf("expected details")
	}
	if got.Date != "2025-06-02" || got.Time != "09:30" || got.Duration != 30 {
		t.Errorf("unexpected details: %+v", got)
	}
}

func TestExtractMeetingDetails_FieldRepair(t *testing.T) {
	// Trailing garbage breaks full JSON parsing; individual fields are
	// still salvageable.
	llm := &cannedLLM{response: `{"date": "2025-06-03", "time": "14:00", "duration": 60,`}
	uc := newExtractFixture(t, llm)

	got := uc.extractMeetingDetails(context.Background(), "June 3rd at 2pm for an hour")
	if got == nil {
		t.Fatalf("expected repaired details")
	}
	if got.Date != "2025-06-03" || got.Time != "14:00" || got.Duration != 60 {
		t.Errorf("unexpected details: %+v", got)
	}
}

func TestExtractMeetingDetails_ClockRecovery(t *testing.T) {
	llm := &cannedLLM{err: errors.New("model unavailable")}
	uc := newExtractFixture(t, llm)

	got := uc.extractMeetingDetails(context.Background(), "can we talk in 30 minutes")
	if got == nil {
		t.Fatalf("expected clock-relative recovery")
	}
	if got.Date != "2025-06-01" || got.Time != "10:30" {
		t.Errorf("unexpected recovery: %+v", got)
	}
}

func TestExtractMeetingDetails_NothingExtractable(t *testing.T) {
	llm := &cannedLLM{response: `{"title": null, "description": null, "date": null, "time": null, "duration": null}`}
	uc := newExtractFixture(t, llm)

	if got := uc.extractMeetingDetails(context.Background(), "sounds good"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestExtractMeetingDetails_InvalidFormatsDropped(t *testing.T) {
	llm := &cannedLLM{response: `{"title": null, "description": null, "date": "June 2nd", "time": "3pm", "duration": 45}`}
	uc := newExtractFixture(t, llm)

	got := uc.extractMeetingDetails(context.Background(), "June 2nd at 3pm for 45 minutes")
	if got == nil {
		t.Fatalf("expected details")
	}
	if got.Date != "" || got.Time != "" {
		t.Errorf("malformed date/time must be dropped: %+v", got)
	}
	if got.Duration != 45 {
		t.Errorf("duration must survive: %+v", got)
	}
}
