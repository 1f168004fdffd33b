package v1

import (
	"context"
	"errors"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// Function-field mock repositories. Unset fields fall back to a safe
// default so each test only wires what it cares about.

type mockUserRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	createFn        func(ctx context.Context, email, firstName, lastName, passwordHash string, admin bool) (int64, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Create(ctx context.Context, email, firstName, lastName, passwordHash string, admin bool) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, email, firstName, lastName, passwordHash, admin)
	}
	return 1, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockSessionRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Session, error)
	findAllFn func(ctx context.Context) ([]domain.Session, error)
	createFn  func(ctx context.Context, session *domain.Session) (int64, error)
	updateFn  func(ctx context.Context, session *domain.Session) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionRepo) FindAll(ctx context.Context) ([]domain.Session, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSessionRepo) Create(ctx context.Context, session *domain.Session) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return 1, nil
}

func (m *mockSessionRepo) Update(ctx context.Context, session *domain.Session) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTeacherRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Teacher, error)
	findAllFn func(ctx context.Context) ([]domain.Teacher, error)
}

func (m *mockTeacherRepo) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.New("not wired")
}

func (m *mockTeacherRepo) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
