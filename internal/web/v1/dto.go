package v1

import (
	"time"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

const dateLayout = "2006-01-02"

// SessionDto is the wire representation of a session. Relations are
// carried by id only: teacher_id is null when no teacher is assigned,
// and users is the ordered participant id list, never null.
type SessionDto struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	TeacherID   *int64    `json:"teacher_id"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserDto is the wire representation of a user. The password hash never
// leaves the service.
type UserDto struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeacherDto is the wire representation of a teacher.
type TeacherDto struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionRequest is the create/update payload for sessions.
type SessionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
	TeacherID   *int64  `json:"teacher_id"`
	Users       []int64 `json:"users"`
}

func sessionToDto(s *domain.Session) SessionDto {
	users := make([]int64, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, u.ID)
	}

	return SessionDto{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date.Format(dateLayout),
		Description: s.Description,
		TeacherID:   s.TeacherID,
		Users:       users,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func sessionFromRequest(req SessionRequest) (*domain.Session, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	// Participants arrive as ids; the store only needs ids to persist
	// the list.
	users := make([]domain.User, 0, len(req.Users))
	for _, id := range req.Users {
		users = append(users, domain.User{ID: id})
	}

	return &domain.Session{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		Users:       users,
	}, nil
}

func userToDto(u *domain.User) UserDto {
	return UserDto{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func teacherToDto(t *domain.Teacher) TeacherDto {
	return TeacherDto{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
