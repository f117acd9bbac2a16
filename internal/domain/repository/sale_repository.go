package repository

import (
	"context"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// SaleRepository define el puerto del ledger de ventas (solo inserción y lectura).
type SaleRepository interface {
	// Create persiste la cabecera y sus líneas; asigna IDs y CreatedAt.
	Create(ctx context.Context, sale *entity.Sale) error
	ListBySeller(ctx context.Context, sellerID int64, limit int) ([]*entity.Sale, error)
	ListAll(ctx context.Context, limit int) ([]*entity.Sale, error)
}
