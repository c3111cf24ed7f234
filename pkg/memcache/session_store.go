package mem

import (
	"encoding/json"
	"sync"
	"time"
)

// SessionStore is the session-scoped key-value store backing the planning
// flow (current itinerary, checkout selection, trip picked for editing).
// Values are JSON-serialized strings; absence is a valid state.
type SessionStore interface {
	Put(sessionID, field string, value any, ttl time.Duration) error

	// Get unmarshals the stored value into out and reports whether a live
	// entry existed. Expired entries read as absent.
	Get(sessionID, field string, out any) bool

	Delete(sessionID, field string)
}

const defaultSessionTTL = 12 * time.Hour

type entry struct {
	payload   []byte
	expiresAt time.Time
}

type SessionCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSessionCache() *SessionCache {
	return &SessionCache{
		data: make(map[string]entry),
	}
}

func key(sessionID, field string) string {
	return sessionID + ":" + field
}

func (s *SessionCache) Put(sessionID, field string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(sessionID, field)] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *SessionCache) Get(sessionID, field string, out any) bool {
	s.mu.RLock()
	e, ok := s.data[key(sessionID, field)]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(sessionID, field)
		return false
	}
	if err := json.Unmarshal(e.payload, out); err != nil {
		// Corrupted entry: discard and report absent.
		s.Delete(sessionID, field)
		return false
	}
	return true
}

func (s *SessionCache) Delete(sessionID, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(sessionID, field))
}
