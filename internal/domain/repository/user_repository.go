package repository

import (
	"context"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// DeleteSeller elimina el usuario solo si su rol no es admin; devuelve si se eliminó.
	DeleteSeller(ctx context.Context, id int64) (bool, error)
}
