package domain

import (
	"context"
	"time"
)

// Session is a bookable class on a calendar date. TeacherID is nil when
// no teacher is assigned. Users is the ordered participant list; its
// order is preserved across load and save.
type Session struct {
	ID          int64
	Name        string
	Date        time.Time
	Description string
	TeacherID   *int64
	Users       []User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasParticipant reports whether a participant with the given user id
// is in the list. Comparison is by id only, never by struct equality.
func (s *Session) HasParticipant(userID int64) bool {
	for i := range s.Users {
		if s.Users[i].ID == userID {
			return true
		}
	}
	return false
}

// SessionRepository defines the data-access contract for sessions.
// GetByID returns (nil, nil) when no row matches.
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*Session, error)
	FindAll(ctx context.Context) ([]Session, error)

	// Create inserts a new session and returns the generated id.
	// The participant list is persisted as given.
	Create(ctx context.Context, session *Session) (int64, error)

	// Update rewrites the session row and replaces its participant
	// list atomically. The target row is identified by session.ID.
	Update(ctx context.Context, session *Session) error

	// Delete removes the session and its participant rows.
	Delete(ctx context.Context, id int64) error
}
