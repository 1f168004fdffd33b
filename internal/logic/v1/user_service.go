package v1

import (
	"context"
	"fmt"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// UserService reads and deletes user accounts.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByID returns the user, or ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// Delete removes the user account. The caller must have passed
// AuthorizeSelfOrAdmin first.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("query user %d: %w", id, err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// AuthorizeSelfOrAdmin permits a mutating user-resource operation when
// the principal targets itself or carries the admin flag. Pure
// function, no side effects; the principal is an explicit argument.
func AuthorizeSelfOrAdmin(principal domain.Principal, targetUserID int64) error {
	if principal.ID == targetUserID || principal.Admin {
		return nil
	}
	return fmt.Errorf("principal %d acting on user %d: %w", principal.ID, targetUserID, ErrForbidden)
}
