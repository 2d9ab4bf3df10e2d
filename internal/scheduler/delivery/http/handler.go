package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatmate-assistant/internal/scheduler"
	pkgLog "chatmate-assistant/pkg/log"
	pkgResponse "chatmate-assistant/pkg/response"
)

type handler struct {
	l     pkgLog.Logger
	sched *scheduler.Scheduler
}

// Schedule is the Gin handler for POST /api/v1/whatsapp/schedule.
// @Summary Schedule a WhatsApp message
// @Description Queues a message for future delivery to a phone number or group
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body scheduleRequest true "Message and delivery time"
// @Success 200 {object} messageResponse
// @Router /api/v1/whatsapp/schedule [post]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "scheduler handler: invalid schedule request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	msg, err := h.sched.Schedule(ctx, req.OwnerID, req.Recipient, req.Message, req.SendAt)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrEmptyRecipient),
			errors.Is(err, scheduler.ErrEmptyText),
			errors.Is(err, scheduler.ErrPastSendTime):
			pkgResponse.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "scheduler handler: schedule failed: %v", err)
			pkgResponse.InternalError(c, err)
		}
		return
	}

	pkgResponse.OK(c, toMessageResponse(msg))
}

// List is the Gin handler for GET /api/v1/whatsapp/scheduled.
// @Summary List scheduled WhatsApp messages
// @Tags WhatsApp
// @Produce json
// @Param ownerId query string false "Filter by owner"
// @Success 200 {object} []messageResponse
// @Router /api/v1/whatsapp/scheduled [get]
func (h *handler) List(c *gin.Context) {
	ownerID := c.Query("ownerId")

	all := h.sched.List()
	out := make([]messageResponse, 0, len(all))
	for _, m := range all {
		if ownerID != "" && m.OwnerID != ownerID {
			continue
		}
		out = append(out, toMessageResponse(m))
	}

	pkgResponse.OK(c, out)
}

// Cancel is the Gin handler for DELETE /api/v1/whatsapp/scheduled/:id.
// @Summary Cancel a scheduled WhatsApp message
// @Tags WhatsApp
// @Produce json
// @Param id path string true "Scheduled message ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/whatsapp/scheduled/{id} [delete]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.sched.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, scheduler.ErrNotFound):
			pkgResponse.NotFound(c, err)
		case errors.Is(err, scheduler.ErrNotCancellable):
			pkgResponse.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "scheduler handler: cancel failed: %v", err)
			pkgResponse.InternalError(c, err)
		}
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "cancelled"})
}
