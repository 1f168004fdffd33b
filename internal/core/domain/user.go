package domain

import (
	"context"
	"time"
)

// User is a registered account. Identity is defined by ID alone: two
// loaded copies of the same row are the same user regardless of other
// field differences. Participant membership checks rely on this.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines the data-access contract for user records.
// Implementations live in internal/core/repository.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns the user with the given login email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user and returns the generated id.
	// created_at/updated_at are set by the store.
	Create(ctx context.Context, email, firstName, lastName, passwordHash string, admin bool) (int64, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
}
