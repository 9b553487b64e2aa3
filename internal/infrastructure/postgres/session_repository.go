package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persiste sesiones en la tabla sessions.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, username, role, remember_me, created_at, last_seen_at, revoked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.UserID, s.Username, s.Role, s.RememberMe, s.CreatedAt, s.LastSeenAt, s.Revoked,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión; (nil, nil) si no existe.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, user_id, username, role, remember_me, created_at, last_seen_at, revoked
		FROM sessions WHERE id = $1`
	var s entity.Session
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Username, &s.Role, &s.RememberMe, &s.CreatedAt, &s.LastSeenAt, &s.Revoked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Touch desliza la expiración por inactividad.
func (r *SessionRepo) Touch(ctx context.Context, id string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE sessions SET last_seen_at = $2 WHERE id = $1 AND NOT revoked`, id, at); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

// Revoke invalida la sesión. No falla si no existe.
func (r *SessionRepo) Revoke(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `UPDATE sessions SET revoked = true WHERE id = $1`, id); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// DeleteInactive elimina sesiones revocadas o sin uso desde before.
func (r *SessionRepo) DeleteInactive(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE revoked OR last_seen_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete inactive sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
