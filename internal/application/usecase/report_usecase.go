package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/application/ports"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

const (
	// DashboardSalesLimit ventas recientes mostradas en el panel admin.
	DashboardSalesLimit = 50
	reportTitle         = "Reporte de ventas"
)

// CSVHeader columnas del export de ventas.
var CSVHeader = []string{"id", "created_at", "seller", "total", "items"}

// ReportUseCase consultas de solo lectura del panel admin: ventas recientes, dashboard y exports.
type ReportUseCase struct {
	reports  repository.ReportRepository
	products repository.ProductRepository
	users    repository.UserRepository
	renderer ports.SalesReportRenderer
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reports repository.ReportRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	renderer ports.SalesReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{reports: reports, products: products, users: users, renderer: renderer, now: time.Now}
}

// RecentSales últimas ventas con el nombre del vendedor (null si fue eliminado).
func (uc *ReportUseCase) RecentSales(ctx context.Context, limit int) ([]dto.SaleSummaryResponse, error) {
	if limit <= 0 {
		limit = DashboardSalesLimit
	}
	rows, err := uc.reports.RecentSales(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleSummaryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SaleSummaryResponse{
			ID:        r.ID,
			Total:     r.Total,
			CreatedAt: r.CreatedAt,
			Seller:    r.SellerName,
		})
	}
	return items, nil
}

// Dashboard arma la vista del panel admin: ventas recientes, catálogo (más nuevos primero) y usuarios.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	sales, err := uc.RecentSales(ctx, DashboardSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard ventas: %w", err)
	}
	products, err := uc.products.List(ctx, repository.ProductOrderNewest)
	if err != nil {
		return nil, fmt.Errorf("dashboard productos: %w", err)
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard usuarios: %w", err)
	}
	resp := &dto.DashboardResponse{
		View:     "admin",
		Sales:    sales,
		Products: toProductResponses(products),
		Users:    make([]dto.UserResponse, 0, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, *toUserResponse(u))
	}
	return resp, nil
}

// ExportSalesCSV escribe todas las ventas en CSV, una fila por venta en orden de id.
// Vendedor eliminado = campo vacío; created_at en RFC3339 UTC; total con dos decimales.
func (uc *ReportUseCase) ExportSalesCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	err := uc.reports.EachSaleForExport(ctx, func(row repository.SaleExportRow) error {
		seller := ""
		if row.SellerName != nil {
			seller = *row.SellerName
		}
		return cw.Write([]string{
			strconv.FormatInt(row.ID, 10),
			row.CreatedAt.UTC().Format(time.RFC3339),
			seller,
			row.Total.StringFixed(2),
			row.Items,
		})
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportSalesPDF genera el reporte imprimible de todas las ventas.
func (uc *ReportUseCase) ExportSalesPDF(ctx context.Context) ([]byte, error) {
	report := ports.SalesReport{
		Title:       reportTitle,
		GeneratedAt: uc.now().UTC(),
		GrandTotal:  decimal.Zero,
	}
	err := uc.reports.EachSaleForExport(ctx, func(row repository.SaleExportRow) error {
		report.Rows = append(report.Rows, row)
		report.GrandTotal = report.GrandTotal.Add(row.Total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderSalesReport(ctx, report)
}
