package usecase

import (
	"time"

	"chatmate-assistant/internal/chat"
	"chatmate-assistant/internal/chat/pending"
	"chatmate-assistant/internal/detect"
	"chatmate-assistant/pkg/datemath"
	"chatmate-assistant/pkg/gcalendar"
	"chatmate-assistant/pkg/gemini"
	pkgLog "chatmate-assistant/pkg/log"
	"chatmate-assistant/pkg/taskapi"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.Generator
	detector detect.Detector
	backend  *taskapi.Client
	calendar *gcalendar.Client // optional, nil disables calendar sync
	pending  *pending.Store
	dateMath *datemath.Parser
	now      func() time.Time
}

// Ensure implUseCase implements chat.UseCase
var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.Generator,
	detector detect.Detector,
	backend *taskapi.Client,
	calendar *gcalendar.Client,
	pendingStore *pending.Store,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		detector: detector,
		backend:  backend,
		calendar: calendar,
		pending:  pendingStore,
		dateMath: dateMath,
		now:      time.Now,
	}
}
