package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chatmate-assistant/internal/scheduler"
)

type stubLogger struct{}

func (stubLogger) Debug(ctx context.Context, args ...any)                  {}
func (stubLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Info(ctx context.Context, args ...any)                   {}
func (stubLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Warn(ctx context.Context, args ...any)                   {}
func (stubLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Error(ctx context.Context, args ...any)                  {}
func (stubLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) DPanic(ctx context.Context, args ...any)                 {}
func (stubLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (stubLogger) Panic(ctx context.Context, args ...any)                  {}
func (stubLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Fatal(ctx context.Context, args ...any)                  {}
func (stubLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type nullStorage struct{}

func (nullStorage) Save(*scheduler.Message) error          { return nil }
func (nullStorage) Delete(string) error                    { return nil }
func (nullStorage) LoadAll() ([]*scheduler.Message, error) { return nil, nil }

type nullSender struct{}

func (nullSender) SendMessage(context.Context, string, string) error { return nil }
func (nullSender) SendToGroup(context.Context, string, string) error { return nil }

func setupRouter() (*gin.Engine, *scheduler.Scheduler) {
	gin.SetMode(gin.TestMode)
	sched := scheduler.New(nullStorage{}, nullSender{}, stubLogger{})
	h := New(stubLogger{}, sched)
	r := gin.New()
	r.POST("/api/v1/whatsapp/schedule", h.Schedule)
	r.GET("/api/v1/whatsapp/scheduled", h.List)
	r.DELETE("/api/v1/whatsapp/scheduled/:id", h.Cancel)
	return r, sched
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSchedule_OK(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/whatsapp/schedule", map[string]any{
		"ownerId":   "alice",
		"recipient": "+1234567890",
		"message":   "meeting reminder",
		"sendAt":    time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	var msg messageResponse
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if msg.ID == "" || msg.Status != string(scheduler.StatusScheduled) {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestSchedule_PastTime(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/whatsapp/schedule", map[string]any{
		"ownerId":   "alice",
		"recipient": "+1234567890",
		"message":   "too late",
		"sendAt":    time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSchedule_MissingFields(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/whatsapp/schedule", map[string]any{
		"ownerId": "alice",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestList_FiltersByOwner(t *testing.T) {
	r, sched := setupRouter()
	ctx := context.Background()
	future := time.Now().Add(time.Hour)

	sched.Schedule(ctx, "alice", "+1111111111", "for alice", future)
	sched.Schedule(ctx, "bob", "+2222222222", "for bob", future)

	w := doJSON(t, r, http.MethodGet, "/api/v1/whatsapp/scheduled?ownerId=alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	var msgs []messageResponse
	if err := json.Unmarshal(env.Data, &msgs); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(msgs) != 1 || msgs[0].OwnerID != "alice" {
		t.Errorf("owner filter failed: %+v", msgs)
	}
}

func TestCancel(t *testing.T) {
	r, sched := setupRouter()
	msg, _ := sched.Schedule(context.Background(), "alice", "+1234567890", "hi", time.Now().Add(time.Hour))

	w := doJSON(t, r, http.MethodDelete, "/api/v1/whatsapp/scheduled/"+msg.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/whatsapp/scheduled/"+msg.ID, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("second cancel status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/whatsapp/scheduled/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", w.Code)
	}
}
