package http

import (
	"github.com/gin-gonic/gin"

	"chatmate-assistant/internal/chat"
	pkgLog "chatmate-assistant/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	Answer(c *gin.Context)
	UpdatePrompt(c *gin.Context)
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
