package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// PgxSessionRepository implements domain.SessionRepository using pgxpool.
// Participant lists live in session_participants, ordered by position.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PgxSessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

// GetByID returns the session with its participant list, or (nil, nil).
func (r *PgxSessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `
		SELECT id, name, date, description, teacher_id, created_at, updated_at
		FROM sessions WHERE id = $1
	`

	var s domain.Session
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	users, err := r.participants(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Users = users

	return &s, nil
}

// FindAll returns all sessions with their participant lists.
func (r *PgxSessionRepository) FindAll(ctx context.Context) ([]domain.Session, error) {
	query := `
		SELECT id, name, date, description, teacher_id, created_at, updated_at
		FROM sessions ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		users, err := r.participants(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Users = users
	}

	return sessions, nil
}

// Create inserts the session and its participant list in one transaction.
func (r *PgxSessionRepository) Create(ctx context.Context, session *domain.Session) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (name, date, description, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query, session.Name, session.Date, session.Description, session.TeacherID).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := replaceParticipants(ctx, tx, id, session.Users); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the session row and replaces its participant list in
// one transaction, so a concurrent reader never sees a half-written list.
func (r *PgxSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE sessions
		SET name = $2, date = $3, description = $4, teacher_id = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, session.ID, session.Name, session.Date, session.Description, session.TeacherID); err != nil {
		return err
	}

	if err := replaceParticipants(ctx, tx, session.ID, session.Users); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the session; participant rows go with it via FK cascade.
func (r *PgxSessionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *PgxSessionRepository) participants(ctx context.Context, sessionID int64) ([]domain.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.admin, u.created_at, u.updated_at
		FROM session_participants sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.session_id = $1
		ORDER BY sp.position
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Admin, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func replaceParticipants(ctx context.Context, tx pgx.Tx, sessionID int64, users []domain.User) error {
	if _, err := tx.Exec(ctx, `DELETE FROM session_participants WHERE session_id = $1`, sessionID); err != nil {
		return err
	}

	for i, u := range users {
		_, err := tx.Exec(ctx,
			`INSERT INTO session_participants (session_id, user_id, position) VALUES ($1, $2, $3)`,
			sessionID, u.ID, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
