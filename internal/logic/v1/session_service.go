package v1

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/middleware"
)

// SessionService owns session CRUD and the participation state
// transitions. Join and Leave are read-modify-write sequences against
// the session store; a per-session-id mutex serializes them so two
// concurrent calls on the same session cannot lose an update.
type SessionService struct {
	sessions domain.SessionRepository
	users    domain.UserRepository

	// one mutex per session id, created on first use
	locks sync.Map
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions domain.SessionRepository, users domain.UserRepository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

func (s *SessionService) lock(sessionID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetByID returns the session, or ErrNotFound.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query session %d: %w", id, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return session, nil
}

// FindAll returns all sessions.
func (s *SessionService) FindAll(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessions, nil
}

// Create persists a new session and returns it with its assigned id.
func (s *SessionService) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Update overwrites the session identified by id. The path id is
// re-asserted onto the payload so the target id cannot be changed by
// the request body.
func (s *SessionService) Update(ctx context.Context, id int64, session *domain.Session) (*domain.Session, error) {
	session.ID = id
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes the session, or fails with ErrNotFound.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("query session %d: %w", id, err)
	}
	if session == nil {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	return nil
}

// Join adds the user to the session's participant list.
//
// Both lookups run before either is checked; with a bad session id the
// user fetch still happens, and the reported failure is ErrNotFound.
// Joining twice fails with ErrAlreadyParticipating — the operation is
// deliberately not idempotent.
func (s *SessionService) Join(ctx context.Context, sessionID, userID int64) error {
	ctx, span := middleware.StartSpan(ctx, "session.join", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", sessionID),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query session %d: %w", sessionID, err)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query user %d: %w", userID, err)
	}
	if session == nil || user == nil {
		return fmt.Errorf("join session %d as user %d: %w", sessionID, userID, ErrNotFound)
	}

	if session.HasParticipant(userID) {
		return fmt.Errorf("join session %d as user %d: %w", sessionID, userID, ErrAlreadyParticipating)
	}

	session.Users = append(session.Users, *user)
	if err := s.sessions.Update(ctx, session); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save session %d: %w", sessionID, err)
	}

	span.SetAttributes(attribute.Int("session.participants", len(session.Users)))
	return nil
}

// Leave removes every participant entry matching the user id.
// Leaving a session the user is not in fails with ErrNotParticipating.
func (s *SessionService) Leave(ctx context.Context, sessionID, userID int64) error {
	ctx, span := middleware.StartSpan(ctx, "session.leave", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", sessionID),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query session %d: %w", sessionID, err)
	}
	if session == nil {
		return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}

	if !session.HasParticipant(userID) {
		return fmt.Errorf("leave session %d as user %d: %w", sessionID, userID, ErrNotParticipating)
	}

	// Remove by id equality, not struct equality: two loaded copies of
	// the same row are the same participant.
	kept := session.Users[:0]
	for _, u := range session.Users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	session.Users = kept

	if err := s.sessions.Update(ctx, session); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save session %d: %w", sessionID, err)
	}

	span.SetAttributes(attribute.Int("session.participants", len(session.Users)))
	return nil
}
