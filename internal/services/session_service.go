package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
	mem "hopa/pkg/memcache"
	"hopa/pkg/utils"
)

const (
	sessionTTL     = 2 * time.Hour
	maxSessionSize = 8
)

type SessionServiceInterface interface {
	CreateSession(ctx context.Context, req request_models.CreateSessionRequest) (*response_models.QuizSession, error)
	GetSession(id string) (*response_models.QuizSession, error)
	JoinSession(id string, playerID string) (*response_models.QuizSession, error)
}

// SessionService keeps quiz rounds in the TTL store and fills each new
// session's question set through the conflict pipeline, so a room is ready
// to play the moment it is created.
type SessionService struct {
	store     mem.SessionStore
	questions ConflictQuestionServiceInterface
}

func NewSessionService(store mem.SessionStore, questions ConflictQuestionServiceInterface) SessionServiceInterface {
	return &SessionService{
		store:     store,
		questions: questions,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, req request_models.CreateSessionRequest) (*response_models.QuizSession, error) {
	if strings.TrimSpace(req.Scenario.Title) == "" {
		return nil, utils.ErrInvalidInput
	}

	generated := s.questions.GenerateQuestions(ctx, req.Scenario, req.Equipments)

	session := &response_models.QuizSession{
		ID:        uuid.New().String(),
		Code:      newJoinCode(),
		HostID:    req.HostID,
		Scenario:  req.Scenario,
		Questions: generated.Questions,
		Source:    generated.Source,
		CreatedAt: time.Now(),
	}
	if req.HostID != "" {
		session.Members = []string{req.HostID}
	}

	s.store.Put(session, sessionTTL)
	return session, nil
}

func (s *SessionService) GetSession(id string) (*response_models.QuizSession, error) {
	if session, ok := s.store.Get(id); ok {
		return session, nil
	}
	if session, ok := s.store.GetByCode(id); ok {
		return session, nil
	}
	return nil, utils.ErrSessionNotFound
}

func (s *SessionService) JoinSession(id string, playerID string) (*response_models.QuizSession, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, utils.ErrInvalidInput
	}

	// Resolve a join code to the canonical id first; the membership change
	// itself happens inside the store's lock so concurrent joins cannot
	// lose members.
	resolved, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}

	session, found, err := s.store.AddMember(resolved.ID, playerID, maxSessionSize)
	if !found {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		if errors.Is(err, mem.ErrCapacityReached) {
			return nil, utils.ErrSessionFull
		}
		return nil, err
	}
	return session, nil
}

// newJoinCode derives a short human-typable room code.
func newJoinCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return raw[:6]
}
