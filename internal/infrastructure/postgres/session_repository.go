package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones sobre la tabla sessions.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el almacén de sesiones en PostgreSQL.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste la sesión. Aprovecha para purgar las sesiones vencidas del mismo usuario.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1 AND expires_at <= now()`, s.UserID); err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1::uuid, $2, $3, $4)`,
		s.ID, s.UserID, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get obtiene una sesión vigente; (nil, nil) si no existe o venció.
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	var s entity.Session
	err := r.q.QueryRow(ctx, `
		SELECT id::text, user_id, created_at, expires_at FROM sessions
		WHERE id = $1::uuid AND expires_at > now()`, id,
	).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión (logout). No falla si ya no existe.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE id = $1::uuid`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las sesiones del usuario.
func (r *SessionRepo) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}
