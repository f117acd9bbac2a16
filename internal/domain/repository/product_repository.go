package repository

import (
	"context"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// Órdenes soportados por ProductRepository.List.
const (
	ProductOrderNewest = "newest" // id DESC (panel admin)
	ProductOrderName   = "name"   // name ASC (POS)
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Update reemplaza los campos editables; devuelve domain.ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, order string) ([]*entity.Product, error)
	// Search busca por subcadena (sin distinguir mayúsculas) en name o sku.
	// Con query vacío devuelve los limit productos más recientes.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	// DecrementStock descuenta qty si la versión coincide con expectedVersion.
	// Devuelve domain.ErrProductNotFound si no existe, domain.ErrConflict si la versión
	// cambió y domain.ErrInsufficientStock si allowNegative es false y el stock no alcanza.
	DecrementStock(ctx context.Context, id, qty, expectedVersion int64, allowNegative bool) error
}
