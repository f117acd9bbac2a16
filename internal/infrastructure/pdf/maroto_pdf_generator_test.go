package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-admin/internal/application/ports"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"29.97":    "29.97",
		"1234.5":   "1,234.50",
		"1000000":  "1,000,000.00",
		"-25000":   "-25,000.00",
		"999.999":  "1,000.00",
		"100":      "100.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestRenderSalesReport_GeneraPDF(t *testing.T) {
	alice := "alice"
	report := ports.SalesReport{
		Title:       "Reporte de ventas",
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Rows: []repository.SaleExportRow{
			{ID: 1, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), SellerName: &alice, Total: decimal.RequireFromString("29.97"), Items: "1:3"},
			{ID: 2, CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("0.30"), Items: "2:1"},
		},
		GrandTotal: decimal.RequireFromString("30.27"),
	}

	out, err := NewMarotoPDFGenerator("pos-admin").RenderSalesReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestRenderSalesReport_SinVentas(t *testing.T) {
	out, err := NewMarotoPDFGenerator("pos-admin").RenderSalesReport(context.Background(), ports.SalesReport{
		Title:       "Reporte de ventas",
		GeneratedAt: time.Now(),
		GrandTotal:  decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
