package ports

import (
	"context"
	"time"

	"github.com/jhoicas/pos-admin/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SalesReport datos del reporte de ventas imprimible.
type SalesReport struct {
	Title       string
	GeneratedAt time.Time
	Rows        []repository.SaleExportRow // id ascendente
	GrandTotal  decimal.Decimal
}

// SalesReportRenderer define el puerto de salida para generar el reporte de ventas en PDF.
// La aplicación solo conoce este contrato; el adaptador concreto vive en infrastructure/pdf.
type SalesReportRenderer interface {
	RenderSalesReport(ctx context.Context, report SalesReport) ([]byte, error)
}
