package repository

import (
	"context"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// SessionStore persiste sesiones de servidor (Postgres o Redis).
// Get devuelve (nil, nil) si la sesión no existe o ya expiró.
type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
}
