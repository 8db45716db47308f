package mem

import (
	"errors"
	"sync"
	"time"

	"hopa/internal/models/response_models"
)

// ErrCapacityReached is returned by AddMember when the session already
// holds the maximum number of members.
var ErrCapacityReached = errors.New("session capacity reached")

type SessionStore interface {
	Put(session *response_models.QuizSession, ttl time.Duration)

	// Get returns a snapshot of the session for id if present and not
	// expired.
	Get(id string) (*response_models.QuizSession, bool)

	// GetByCode resolves a short join code to the session it belongs to.
	GetByCode(code string) (*response_models.QuizSession, bool)

	// AddMember appends playerID to the session's member list under the
	// store's lock. Adding an existing member is a no-op. Returns
	// ErrCapacityReached when the list is already at maxMembers.
	AddMember(id string, playerID string, maxMembers int) (*response_models.QuizSession, bool, error)

	Delete(id string)
}

type sessionEntry struct {
	session   *response_models.QuizSession
	expiresAt time.Time
}

type QuizSessions struct {
	mu     sync.RWMutex
	data   map[string]sessionEntry
	byCode map[string]string
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data:   make(map[string]sessionEntry),
		byCode: make(map[string]string),
	}
}

func (s *QuizSessions) Put(session *response_models.QuizSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = sessionEntry{
		session:   snapshot(session),
		expiresAt: time.Now().Add(ttl),
	}
	if session.Code != "" {
		s.byCode[session.Code] = session.ID
	}
}

func (s *QuizSessions) Get(id string) (*response_models.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(id)
	if !ok {
		return nil, false
	}
	return snapshot(session), true
}

func (s *QuizSessions) AddMember(id string, playerID string, maxMembers int) (*response_models.QuizSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(id)
	if !ok {
		return nil, false, nil
	}

	for _, m := range session.Members {
		if m == playerID {
			return snapshot(session), true, nil
		}
	}
	if len(session.Members) >= maxMembers {
		return nil, true, ErrCapacityReached
	}

	session.Members = append(session.Members, playerID)
	return snapshot(session), true, nil
}

func (s *QuizSessions) GetByCode(code string) (*response_models.QuizSession, bool) {
	s.mu.RLock()
	id, ok := s.byCode[code]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return s.Get(id)
}

func (s *QuizSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[id]; ok {
		s.evictLocked(id, e)
	}
}

func (s *QuizSessions) evictLocked(id string, e sessionEntry) {
	delete(s.data, id)
	if e.session != nil && e.session.Code != "" {
		delete(s.byCode, e.session.Code)
	}
}

// liveLocked returns the stored session for id, evicting it first when the
// TTL has lapsed. Callers must hold mu.
func (s *QuizSessions) liveLocked(id string) (*response_models.QuizSession, bool) {
	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.evictLocked(id, e)
		return nil, false
	}
	return e.session, true
}

// snapshot copies the session so callers never share the stored struct.
// The member list gets its own backing array; questions are never mutated
// after creation, so sharing that slice is safe.
func snapshot(session *response_models.QuizSession) *response_models.QuizSession {
	out := *session
	out.Members = append([]string(nil), session.Members...)
	return &out
}
