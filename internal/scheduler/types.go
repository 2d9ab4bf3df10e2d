package scheduler

import "time"

// Status is the lifecycle state of a scheduled message.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Message is one WhatsApp message queued for future delivery. Messages
// survive restarts; overdue ones are delivered on the next dispatch
// cycle rather than dropped.
type Message struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Recipient string     `json:"recipient"` // phone number or group name
	Text      string     `json:"text"`
	SendAt    time.Time  `json:"sendAt"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}
