package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-admin/internal/application/ports"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
	"github.com/jhoicas/pos-admin/internal/mocks"
)

func strPtr(s string) *string { return &s }

func exportRows() []repository.SaleExportRow {
	return []repository.SaleExportRow{
		{ID: 1, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), SellerName: strPtr("alice"), Total: decimal.RequireFromString("29.97"), Items: "1:3"},
		{ID: 2, CreatedAt: time.Date(2024, 5, 1, 5, 30, 0, 0, time.FixedZone("COT", -5*3600)), SellerName: nil, Total: decimal.RequireFromString("0.3"), Items: "2:1"},
		{ID: 3, CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC), SellerName: strPtr("bob"), Total: decimal.NewFromInt(5), Items: "1:1;2:2"},
	}
}

// ── ExportSalesCSV ───────────────────────────────────────────────────────────

func TestExportSalesCSV_CabeceraYFilas(t *testing.T) {
	reports := &mocks.ReportRepository{}
	reports.On("EachSaleForExport", mock.Anything).Return(exportRows(), nil)
	uc := NewReportUseCase(reports, nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportSalesCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4, "cabecera + una fila por venta")
	assert.Equal(t, "id,created_at,seller,total,items", lines[0])
	assert.Equal(t, "1,2024-05-01T09:00:00Z,alice,29.97,1:3", lines[1])
	assert.Equal(t, "2,2024-05-01T10:30:00Z,,0.30,2:1", lines[2])
	assert.Equal(t, "3,2024-05-02T08:00:00Z,bob,5.00,1:1;2:2", lines[3])
}

func TestExportSalesCSV_SinVentas(t *testing.T) {
	reports := &mocks.ReportRepository{}
	reports.On("EachSaleForExport", mock.Anything).Return(nil, nil)
	uc := NewReportUseCase(reports, nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportSalesCSV(context.Background(), &buf))
	assert.Equal(t, "id,created_at,seller,total,items\n", buf.String())
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboard_VendedorEliminadoEsNull(t *testing.T) {
	reports := &mocks.ReportRepository{}
	products := &mocks.ProductRepository{}
	users := &mocks.UserRepository{}
	reports.On("RecentSales", mock.Anything, DashboardSalesLimit).Return([]repository.SaleSummary{
		{ID: 2, Total: decimal.RequireFromString("0.30"), SellerName: nil},
		{ID: 1, Total: decimal.RequireFromString("29.97"), SellerName: strPtr("seller1")},
	}, nil)
	products.On("List", mock.Anything, repository.ProductOrderNewest).Return([]*entity.Product{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}, nil)
	users.On("List", mock.Anything).Return([]*entity.User{{ID: 1, Username: "admin", Role: entity.RoleAdmin}}, nil)

	resp, err := NewReportUseCase(reports, products, users, nil).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.View)
	require.Len(t, resp.Sales, 2)
	assert.Nil(t, resp.Sales[0].Seller)
	require.NotNil(t, resp.Sales[1].Seller)
	assert.Equal(t, "seller1", *resp.Sales[1].Seller)
	assert.Equal(t, int64(2), resp.Products[0].ID)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "admin", resp.Users[0].Username)
}

// ── ExportSalesPDF ───────────────────────────────────────────────────────────

func TestExportSalesPDF_SumaTotales(t *testing.T) {
	reports := &mocks.ReportRepository{}
	renderer := &mocks.SalesReportRenderer{}
	reports.On("EachSaleForExport", mock.Anything).Return(exportRows(), nil)
	renderer.On("RenderSalesReport", mock.Anything, mock.MatchedBy(func(r ports.SalesReport) bool {
		return len(r.Rows) == 3 && r.GrandTotal.Equal(decimal.RequireFromString("35.27"))
	})).Return([]byte("%PDF-1.3"), nil)

	uc := NewReportUseCase(reports, nil, nil, renderer)
	out, err := uc.ExportSalesPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)
	renderer.AssertExpectations(t)
}
