package http

import (
	"github.com/gin-gonic/gin"

	"chatmate-assistant/internal/scheduler"
	pkgLog "chatmate-assistant/pkg/log"
)

// Handler is the interface for the WhatsApp scheduling HTTP handler.
type Handler interface {
	Schedule(c *gin.Context)
	List(c *gin.Context)
	Cancel(c *gin.Context)
}

// New creates a new scheduler delivery handler.
func New(l pkgLog.Logger, sched *scheduler.Scheduler) Handler {
	return &handler{
		l:     l,
		sched: sched,
	}
}
