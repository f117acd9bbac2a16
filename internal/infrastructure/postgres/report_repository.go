package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el panel admin y el export.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// RecentSales últimas ventas con el username del vendedor (NULL si fue eliminado).
func (r *ReportRepo) RecentSales(ctx context.Context, limit int) ([]repository.SaleSummary, error) {
	const query = `
	SELECT s.id, s.total, s.created_at, u.username
	FROM sales s
	LEFT JOIN users u ON u.id = s.seller_id
	ORDER BY s.id DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.RecentSales: %w", err)
	}
	defer rows.Close()

	results := make([]repository.SaleSummary, 0, limit)
	for rows.Next() {
		var row repository.SaleSummary
		if err := rows.Scan(&row.ID, &row.Total, &row.CreatedAt, &row.SellerName); err != nil {
			return nil, fmt.Errorf("report.RecentSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// EachSaleForExport recorre todas las ventas por id ascendente y llama fn por fila.
// Si fn devuelve error se corta la iteración y se propaga.
func (r *ReportRepo) EachSaleForExport(ctx context.Context, fn func(repository.SaleExportRow) error) error {
	const query = `
	SELECT s.id, s.created_at, u.username, s.total, s.items
	FROM sales s
	LEFT JOIN users u ON u.id = s.seller_id
	ORDER BY s.id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("report.EachSaleForExport: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row repository.SaleExportRow
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.SellerName, &row.Total, &row.Items); err != nil {
			return fmt.Errorf("report.EachSaleForExport scan: %w", err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}
