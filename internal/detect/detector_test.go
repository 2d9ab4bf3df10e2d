package detect

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chatmate-assistant/pkg/gemini"
	"chatmate-assistant/pkg/log"
)

type fakeGenerator struct {
	response string
	err      error
	lastReq  gemini.GenerateRequest
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: f.response}}}},
		},
	}, nil
}

func newTestDetector(g gemini.Generator) *LLMDetector {
	return New(g, log.Init(log.ZapConfig{Level: "fatal"}))
}

func TestDetect_TaskRequest(t *testing.T) {
	gen := &fakeGenerator{response: "YES\nFollow up about the cosmos deployment"}
	d := newTestDetector(gen)

	out, err := d.Detect(context.Background(), "When you get time ping me about the cosmos deployment", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsTask {
		t.Errorf("expected task detection")
	}
	if out.IsMeetingRequest {
		t.Errorf("plain follow-up must not be a meeting request")
	}
	if out.TaskDescription != "Follow up about the cosmos deployment" {
		t.Errorf("unexpected description: %q", out.TaskDescription)
	}
}

func TestDetect_NotATask(t *testing.T) {
	gen := &fakeGenerator{response: "NO"}
	d := newTestDetector(gen)

	out, err := d.Detect(context.Background(), "What projects have you worked on?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.IsTask || out.IsMeetingRequest {
		t.Errorf("expected no task, got %+v", out)
	}
}

func TestDetect_MeetingRequest(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		response string
	}{
		{"Meeting word in message", "Can we schedule a meeting next week?", "YES\nSchedule a meeting next week"},
		{"Call word in message", "Let's have a call tomorrow", "YES\nHave a discussion tomorrow"},
		{"Meeting only in LLM summary", "Let's sync up on this next week", "YES\nSchedule a meeting to sync up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(&fakeGenerator{response: tt.response})
			out, err := d.Detect(context.Background(), tt.message, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.IsTask || !out.IsMeetingRequest {
				t.Errorf("expected meeting request, got %+v", out)
			}
		})
	}
}

func TestDetect_PreservesURLs(t *testing.T) {
	gen := &fakeGenerator{response: "YES\nCheck the deployment issue"}
	d := newTestDetector(gen)

	out, err := d.Detect(context.Background(), "Ping me about https://github.com/acme/repo/issues/42 later", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.URLs) != 1 || out.URLs[0] != "https://github.com/acme/repo/issues/42" {
		t.Errorf("unexpected urls: %v", out.URLs)
	}
	if !strings.Contains(out.TaskDescription, "- Links: https://github.com/acme/repo/issues/42") {
		t.Errorf("dropped URL must be re-appended, got %q", out.TaskDescription)
	}
}

func TestDetect_URLAlreadyInDescription(t *testing.T) {
	gen := &fakeGenerator{response: "YES\nCheck https://github.com/acme/repo/issues/42"}
	d := newTestDetector(gen)

	out, err := d.Detect(context.Background(), "Ping me about https://github.com/acme/repo/issues/42 later", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.TaskDescription, "- Links:") {
		t.Errorf("URL already present must not be duplicated: %q", out.TaskDescription)
	}
}

func TestDetect_LLMErrorFallsBackToConversation(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	d := newTestDetector(gen)

	out, err := d.Detect(context.Background(), "remind me later", "")
	if err != nil {
		t.Fatalf("LLM failure must not surface as an error: %v", err)
	}
	if out.IsTask {
		t.Errorf("LLM failure must degrade to non-task")
	}
}

func TestDetect_IncludesConversationContext(t *testing.T) {
	gen := &fakeGenerator{response: "NO"}
	d := newTestDetector(gen)

	_, err := d.Detect(context.Background(), "yes", "User: let's meet\nAssistant: when?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := gen.lastReq.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Recent conversation context:") {
		t.Errorf("prompt missing conversation context section")
	}
}
