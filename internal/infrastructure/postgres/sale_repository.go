package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del ledger de ventas (usable con pool o tx).
// Create debe ejecutarse dentro de la misma tx que el descuento de stock.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y cada línea; completa IDs y CreatedAt.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (seller_id, items, total, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		sale.SellerID, sale.Items, sale.Total, sale.CreatedAt,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Lines {
		line := &sale.Lines[i]
		line.SaleID = sale.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// ListBySeller últimas ventas del vendedor, más recientes primero (sin líneas).
func (r *SaleRepo) ListBySeller(ctx context.Context, sellerID int64, limit int) ([]*entity.Sale, error) {
	return r.list(ctx, `
		SELECT id, seller_id, items, total, created_at FROM sales
		WHERE seller_id = $1 ORDER BY id DESC LIMIT $2`, sellerID, limit)
}

// ListAll últimas ventas de todos los vendedores, más recientes primero (sin líneas).
func (r *SaleRepo) ListAll(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return r.list(ctx, `
		SELECT id, seller_id, items, total, created_at FROM sales
		ORDER BY id DESC LIMIT $1`, limit)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Items, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
