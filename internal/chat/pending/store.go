package pending

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"chatmate-assistant/internal/model"
)

const (
	// DefaultTTL bounds how long a half-negotiated meeting survives
	// without another message in the session.
	DefaultTTL = 30 * time.Minute

	// DefaultCapacity bounds concurrent sessions; least recently used
	// negotiations are evicted first.
	DefaultCapacity = 1024
)

// Meeting is the in-flight negotiation for one session.
type Meeting struct {
	Details          model.MeetingDetails
	OriginalQuestion string
}

// Store keeps per-session pending meetings. Sessions are isolated by
// visitor+owner, so concurrent conversations never see each other's
// negotiation state.
type Store struct {
	cache *expirable.LRU[string, *Meeting]
}

// NewStore creates a Store with the given TTL and capacity. Zero values
// select the defaults.
func NewStore(ttl time.Duration, capacity int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		cache: expirable.NewLRU[string, *Meeting](capacity, nil, ttl),
	}
}

// Get returns the pending meeting for the session, or a fresh empty one
// if none exists. The returned value is not stored until Put.
func (s *Store) Get(scope model.Scope) *Meeting {
	if m, ok := s.cache.Get(scope.SessionKey()); ok {
		return m
	}
	return &Meeting{}
}

// Put stores the pending meeting for the session, resetting its TTL.
func (s *Store) Put(scope model.Scope, m *Meeting) {
	s.cache.Add(scope.SessionKey(), m)
}

// Clear drops the session's pending meeting.
func (s *Store) Clear(scope model.Scope) {
	s.cache.Remove(scope.SessionKey())
}

// Len returns the number of live negotiations.
func (s *Store) Len() int {
	return s.cache.Len()
}
