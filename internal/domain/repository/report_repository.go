package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleSummary fila de ventas recientes con el nombre del vendedor (LEFT JOIN users).
// SellerName es nil si el vendedor fue eliminado.
type SaleSummary struct {
	ID         int64
	Total      decimal.Decimal
	CreatedAt  time.Time
	SellerName *string
}

// SaleExportRow fila del export CSV: id, created_at, seller, total, items.
type SaleExportRow struct {
	ID         int64
	CreatedAt  time.Time
	SellerName *string
	Total      decimal.Decimal
	Items      string
}

// ReportRepository consultas de solo lectura sobre el ledger.
type ReportRepository interface {
	RecentSales(ctx context.Context, limit int) ([]SaleSummary, error)
	// EachSaleForExport recorre todas las ventas por id ascendente sin cargarlas en memoria.
	EachSaleForExport(ctx context.Context, fn func(SaleExportRow) error) error
}
