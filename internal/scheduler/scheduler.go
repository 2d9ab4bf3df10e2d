package scheduler

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	pkgLog "chatmate-assistant/pkg/log"
	"chatmate-assistant/pkg/whatsapp"
)

// DispatchSpec is how often due messages are checked for delivery.
const DispatchSpec = "@every 30s"

var (
	ErrEmptyRecipient = errors.New("recipient is empty")
	ErrEmptyText      = errors.New("message text is empty")
	ErrPastSendTime   = errors.New("send time is in the past")
	ErrNotFound       = errors.New("scheduled message not found")
	ErrNotCancellable = errors.New("message already left the scheduled state")
)

// Sender delivers WhatsApp messages. Satisfied by whatsapp.Client.
type Sender interface {
	SendMessage(ctx context.Context, phone, text string) error
	SendToGroup(ctx context.Context, group, text string) error
}

// Scheduler queues WhatsApp messages for future delivery. State lives
// in Storage so a restart picks up where it left off; overdue messages
// go out on the first dispatch cycle instead of being dropped.
type Scheduler struct {
	messages map[string]*Message
	storage  Storage
	sender   Sender
	l        pkgLog.Logger
	cron     *cron.Cron
	now      func() time.Time
	mu       sync.RWMutex
}

// New creates a Scheduler with the given storage and sender.
func New(storage Storage, sender Sender, l pkgLog.Logger) *Scheduler {
	return &Scheduler{
		messages: make(map[string]*Message),
		storage:  storage,
		sender:   sender,
		l:        l,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start restores persisted messages and begins the dispatch loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.restore(ctx); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(DispatchSpec, func() {
		s.dispatchDue(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.l.Infof(ctx, "internal.scheduler: started with %d pending message(s)", s.pendingCount())
	return nil
}

// Stop halts the dispatch loop. In-flight deliveries finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Schedule queues a message for delivery at sendAt.
func (s *Scheduler) Schedule(ctx context.Context, ownerID, recipient, text string, sendAt time.Time) (*Message, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrEmptyRecipient
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if !sendAt.After(s.now()) {
		return nil, ErrPastSendTime
	}

	msg := &Message{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Recipient: recipient,
		Text:      text,
		SendAt:    sendAt,
		Status:    StatusScheduled,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.mu.Unlock()

	if err := s.storage.Save(msg); err != nil {
		s.l.Errorf(ctx, "internal.scheduler: persist failed for %s: %v", msg.ID, err)
	}

	s.l.Infof(ctx, "internal.scheduler: queued %s for %s at %s", msg.ID, msg.Recipient, msg.SendAt.Format(time.RFC3339))
	return msg, nil
}

// Cancel marks a still-scheduled message as cancelled.
func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	msg, ok := s.messages[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if msg.Status != StatusScheduled {
		s.mu.Unlock()
		return ErrNotCancellable
	}
	msg.Status = StatusCancelled
	s.mu.Unlock()

	if err := s.storage.Save(msg); err != nil {
		s.l.Errorf(ctx, "internal.scheduler: persist failed for %s: %v", id, err)
	}
	return nil
}

// List returns all known messages ordered by send time.
func (s *Scheduler) List() []*Message {
	s.mu.RLock()
	out := make([]*Message, 0, len(s.messages))
	for _, m := range s.messages {
		dup := *m
		out = append(out, &dup)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].SendAt.Before(out[j].SendAt) })
	return out
}

// restore loads persisted messages into memory.
func (s *Scheduler) restore(ctx context.Context) error {
	persisted, err := s.storage.LoadAll()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range persisted {
		s.messages[m.ID] = m
		if m.Status == StatusScheduled && m.SendAt.Before(s.now()) {
			s.l.Warnf(ctx, "internal.scheduler: %s overdue since %s, delivering on next cycle", m.ID, m.SendAt.Format(time.RFC3339))
		}
	}
	return nil
}

// dispatchDue delivers every scheduled message whose send time has
// passed and records the outcome.
func (s *Scheduler) dispatchDue(ctx context.Context) {
	now := s.now()

	s.mu.RLock()
	var due []*Message
	for _, m := range s.messages {
		if m.Status == StatusScheduled && !m.SendAt.After(now) {
			due = append(due, m)
		}
	}
	s.mu.RUnlock()

	for _, msg := range due {
		err := s.deliver(ctx, msg)

		s.mu.Lock()
		if err != nil {
			msg.Status = StatusFailed
			msg.LastError = err.Error()
			s.l.Errorf(ctx, "internal.scheduler: delivery failed for %s: %v", msg.ID, err)
		} else {
			sentAt := s.now()
			msg.Status = StatusSent
			msg.SentAt = &sentAt
			s.l.Infof(ctx, "internal.scheduler: delivered %s to %s", msg.ID, msg.Recipient)
		}
		s.mu.Unlock()

		if err := s.storage.Save(msg); err != nil {
			s.l.Errorf(ctx, "internal.scheduler: persist failed for %s: %v", msg.ID, err)
		}
	}
}

// deliver sends to a phone number directly; anything else is treated as
// a group name, falling back to a direct send when the group send fails.
func (s *Scheduler) deliver(ctx context.Context, msg *Message) error {
	if whatsapp.IsPhoneNumber(msg.Recipient) {
		return s.sender.SendMessage(ctx, msg.Recipient, msg.Text)
	}
	if err := s.sender.SendToGroup(ctx, msg.Recipient, msg.Text); err != nil {
		s.l.Warnf(ctx, "internal.scheduler: group send failed for %s, retrying as contact: %v", msg.ID, err)
		return s.sender.SendMessage(ctx, msg.Recipient, msg.Text)
	}
	return nil
}

func (s *Scheduler) pendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, m := range s.messages {
		if m.Status == StatusScheduled {
			n++
		}
	}
	return n
}
