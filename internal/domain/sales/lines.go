// Package sales contiene la lógica pura del ledger: cálculo de líneas y totales
// y el descriptor compacto de ítems usado en el export.
package sales

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MaxQuantity cantidad máxima por línea de venta.
const MaxQuantity = 100000

// ItemRef par producto/cantidad de una línea pedida.
type ItemRef struct {
	ProductID int64
	Quantity  int64
}

// NewLine construye una línea con el precio del producto congelado al momento de la venta.
// Subtotal = Price × qty.
func NewLine(product *entity.Product, qty int64) (entity.SaleItem, error) {
	if product == nil {
		return entity.SaleItem{}, domain.ErrProductNotFound
	}
	if qty <= 0 {
		return entity.SaleItem{}, domain.ErrInvalidInput
	}
	return entity.SaleItem{
		ProductID: product.ID,
		Quantity:  qty,
		UnitPrice: product.Price,
		Subtotal:  product.Price.Mul(decimal.NewFromInt(qty)),
	}, nil
}

// Total suma los subtotales de las líneas.
func Total(lines []entity.SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// EncodeItems genera el descriptor "productID:qty" por línea, separado por ';'.
// Con una sola línea coincide con el formato histórico "pid:qty".
func EncodeItems(lines []entity.SaleItem) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%d:%d", l.ProductID, l.Quantity))
	}
	return strings.Join(parts, ";")
}

// MergeRefs agrupa cantidades del mismo producto y ordena por ProductID, de modo que
// toda venta bloquea las filas de productos en el mismo orden.
func MergeRefs(refs []ItemRef) []ItemRef {
	idx := make(map[int64]int, len(refs))
	out := make([]ItemRef, 0, len(refs))
	for _, r := range refs {
		if i, ok := idx[r.ProductID]; ok {
			out[i].Quantity += r.Quantity
			continue
		}
		idx[r.ProductID] = len(out)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
