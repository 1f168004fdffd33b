package v1

import (
	"context"
	"fmt"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// TeacherService reads teacher records.
type TeacherService struct {
	teachers domain.TeacherRepository
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teachers domain.TeacherRepository) *TeacherService {
	return &TeacherService{teachers: teachers}
}

// GetByID returns the teacher, or ErrNotFound.
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query teacher %d: %w", id, err)
	}
	if teacher == nil {
		return nil, fmt.Errorf("teacher %d: %w", id, ErrNotFound)
	}
	return teacher, nil
}

// FindAll returns all teachers.
func (s *TeacherService) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	teachers, err := s.teachers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query teachers: %w", err)
	}
	return teachers, nil
}
