package service

import (
	"github.com/patrickmn/go-cache"
)

// SessionStore keeps the extracted document text of each session in memory.
// Entries never expire and are never evicted; a session lives until it is
// cleared or the process exits. State is process-local only, so restarts
// drop every session and horizontal scaling is not supported.
type SessionStore struct {
	sessions *cache.Cache
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	// No default expiration and no janitor: lifecycle is explicit.
	return &SessionStore{
		sessions: cache.New(cache.NoExpiration, 0),
	}
}

// Put stores text for the session, replacing any previously stored document.
func (s *SessionStore) Put(sessionID, text string) {
	s.sessions.Set(sessionID, text, cache.NoExpiration)
}

// Get returns the stored text for the session. The second return value is
// false when the session has never seen a successful upload.
func (s *SessionStore) Get(sessionID string) (string, bool) {
	value, found := s.sessions.Get(sessionID)
	if !found {
		return "", false
	}
	text, _ := value.(string)
	return text, true
}

// Clear removes the session's document. Clearing an unknown session is a
// no-op.
func (s *SessionStore) Clear(sessionID string) {
	s.sessions.Delete(sessionID)
}
