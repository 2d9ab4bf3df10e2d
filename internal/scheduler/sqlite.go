package scheduler

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS scheduled_messages (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	recipient  TEXT NOT NULL,
	text       TEXT NOT NULL,
	send_at    TEXT NOT NULL,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL,
	sent_at    TEXT,
	last_error TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_scheduled_messages_status ON scheduled_messages(status);
`

// SQLiteStorage persists scheduled messages in a SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the database at path and ensures
// the schema exists. The parent directory is created if needed.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening scheduler db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating scheduler schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Save persists a message (insert or update).
func (s *SQLiteStorage) Save(msg *Message) error {
	var sentAt sql.NullString
	if msg.SentAt != nil {
		sentAt = sql.NullString{String: msg.SentAt.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO scheduled_messages
			(id, owner_id, recipient, text, send_at, status, created_at, sent_at, last_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID,
		msg.OwnerID,
		msg.Recipient,
		msg.Text,
		msg.SendAt.UTC().Format(time.RFC3339),
		string(msg.Status),
		msg.CreatedAt.UTC().Format(time.RFC3339),
		sentAt,
		msg.LastError,
	)
	if err != nil {
		return fmt.Errorf("save message %q: %w", msg.ID, err)
	}
	return nil
}

// Delete removes a message by ID.
func (s *SQLiteStorage) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM scheduled_messages WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete message %q: %w", id, err)
	}
	return nil
}

// LoadAll reads all persisted messages.
func (s *SQLiteStorage) LoadAll() ([]*Message, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, recipient, text, send_at, status, created_at, sent_at, last_error
		FROM scheduled_messages`)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var (
			m         Message
			status    string
			sendAt    string
			createdAt string
			sentAt    sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Recipient, &m.Text, &sendAt, &status, &createdAt, &sentAt, &m.LastError); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}

		m.Status = Status(status)
		m.SendAt, _ = time.Parse(time.RFC3339, sendAt)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if sentAt.Valid {
			t, _ := time.Parse(time.RFC3339, sentAt.String)
			m.SentAt = &t
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}
