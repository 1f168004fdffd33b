package domain

import (
	"context"
	"time"
)

// Teacher is an instructor that sessions may reference. A teacher never
// owns a session.
type Teacher struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeacherRepository defines the data-access contract for teachers.
// GetByID returns (nil, nil) when no row matches.
type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*Teacher, error)
	FindAll(ctx context.Context) ([]Teacher, error)
}
