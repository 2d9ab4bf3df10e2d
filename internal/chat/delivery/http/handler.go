package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatmate-assistant/internal/chat"
	"chatmate-assistant/internal/model"
	pkgLog "chatmate-assistant/pkg/log"
	pkgResponse "chatmate-assistant/pkg/response"
)

// AnonymousVisitorID keys session state for visitors who never logged
// in. They still get per-browser isolation client-side; server-side all
// anonymous traffic for one owner shares a negotiation slot, which is
// acceptable because anonymous visitors cannot schedule anything.
const AnonymousVisitorID = "anonymous"

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// Answer is the Gin handler for POST /api/v1/chat/answer.
// @Summary Answer a visitor message
// @Description Routes a chat message through meeting negotiation, task detection and persona answering
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body answerRequest true "Visitor message with owner profile and history"
// @Success 200 {object} answerResponse
// @Router /api/v1/chat/answer [post]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat handler: invalid answer request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	sc := model.Scope{
		VisitorID: AnonymousVisitorID,
		OwnerID:   req.Owner.Username,
	}
	if req.Visitor != nil && req.Visitor.Username != "" {
		sc.VisitorID = req.Visitor.Username
	}

	out, err := h.uc.Answer(ctx, sc, chat.AnswerInput{
		Question: req.Question,
		Owner:    req.Owner,
		Visitor:  req.Visitor,
		History:  req.History,
	})
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyQuestion), errors.Is(err, chat.ErrMissingOwner):
			pkgResponse.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "chat handler: answer failed: %v", err)
			pkgResponse.InternalError(c, err)
		}
		return
	}

	pkgResponse.OK(c, answerResponse{
		Reply:  out.Reply,
		Intent: out.Intent,
		TaskID: out.TaskID,
	})
}

// UpdatePrompt is the Gin handler for POST /api/v1/prompt.
// @Summary Update the owner's knowledge-base prompt
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body updatePromptRequest true "New prompt content"
// @Success 200 {object} map[string]string
// @Router /api/v1/prompt [post]
func (h *handler) UpdatePrompt(c *gin.Context) {
	ctx := c.Request.Context()

	var req updatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat handler: invalid prompt request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	sc := model.Scope{VisitorID: req.UserID, OwnerID: req.UserID}
	if err := h.uc.UpdatePrompt(ctx, sc, req.Content); err != nil {
		if errors.Is(err, chat.ErrEmptyContent) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat handler: prompt update failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "updated"})
}
