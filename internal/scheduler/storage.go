package scheduler

// Storage defines the persistence interface for scheduled messages.
type Storage interface {
	// Save persists a message (insert or update).
	Save(msg *Message) error

	// Delete removes a message by ID.
	Delete(id string) error

	// LoadAll reads all persisted messages.
	LoadAll() ([]*Message, error)
}
