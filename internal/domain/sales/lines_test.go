package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/sales"
)

func widget() *entity.Product {
	return &entity.Product{ID: 7, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 10}
}

func TestNewLine_CongelaPrecioYCalculaSubtotal(t *testing.T) {
	p := widget()
	line, err := sales.NewLine(p, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(7), line.ProductID)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("29.97")),
		"9.99 × 3 debe ser exactamente 29.97, got %s", line.Subtotal)

	// Cambiar el precio después no altera la línea ya construida.
	p.Price = decimal.NewFromInt(100)
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("29.97")))
}

func TestNewLine_CantidadInvalida(t *testing.T) {
	_, err := sales.NewLine(widget(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = sales.NewLine(widget(), -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewLine_ProductoNil(t *testing.T) {
	_, err := sales.NewLine(nil, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTotal_SumaLineas(t *testing.T) {
	a, _ := sales.NewLine(widget(), 3)
	b, _ := sales.NewLine(&entity.Product{ID: 8, Price: decimal.RequireFromString("0.10")}, 3)
	assert.True(t, sales.Total([]entity.SaleItem{a, b}).Equal(decimal.RequireFromString("30.27")))
	assert.True(t, sales.Total(nil).IsZero())
}

func TestEncodeItems_FormatoHistoricoUnaLinea(t *testing.T) {
	line, _ := sales.NewLine(widget(), 3)
	assert.Equal(t, "7:3", sales.EncodeItems([]entity.SaleItem{line}))
}

func TestEncodeItems_VariasLineas(t *testing.T) {
	a, _ := sales.NewLine(widget(), 3)
	b, _ := sales.NewLine(&entity.Product{ID: 12, Price: decimal.NewFromInt(1)}, 1)
	assert.Equal(t, "7:3;12:1", sales.EncodeItems([]entity.SaleItem{a, b}))
}

func TestMergeRefs_AgrupaMismoProducto(t *testing.T) {
	merged := sales.MergeRefs([]sales.ItemRef{{ProductID: 7, Quantity: 1}, {ProductID: 9, Quantity: 2}, {ProductID: 7, Quantity: 4}})
	assert.Equal(t, []sales.ItemRef{{ProductID: 7, Quantity: 5}, {ProductID: 9, Quantity: 2}}, merged)
}

func TestMergeRefs_OrdenaPorProducto(t *testing.T) {
	merged := sales.MergeRefs([]sales.ItemRef{{ProductID: 9, Quantity: 1}, {ProductID: 2, Quantity: 2}, {ProductID: 5, Quantity: 1}})
	assert.Equal(t, []sales.ItemRef{{ProductID: 2, Quantity: 2}, {ProductID: 5, Quantity: 1}, {ProductID: 9, Quantity: 1}}, merged)
}
