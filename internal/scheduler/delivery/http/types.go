package http

import (
	"time"

	"chatmate-assistant/internal/scheduler"
)

// scheduleRequest is the body for POST /api/v1/whatsapp/schedule.
type scheduleRequest struct {
	OwnerID   string    `json:"ownerId" binding:"required"`
	Recipient string    `json:"recipient" binding:"required"` // phone number or group name
	Message   string    `json:"message" binding:"required"`
	SendAt    time.Time `json:"sendAt" binding:"required"`
}

type messageResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Recipient string     `json:"recipient"`
	Message   string     `json:"message"`
	SendAt    time.Time  `json:"sendAt"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

func toMessageResponse(m *scheduler.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Recipient: m.Recipient,
		Message:   m.Text,
		SendAt:    m.SendAt,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		SentAt:    m.SentAt,
		LastError: m.LastError,
	}
}
