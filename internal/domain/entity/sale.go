package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta (registro append-only del ledger).
// SellerID es nil cuando el vendedor fue eliminado después de la venta.
type Sale struct {
	ID        int64
	SellerID  *int64
	Items     string          // descriptor compacto "productID:qty;..." (columna items del export)
	Total     decimal.Decimal // snapshot: suma de subtotales al momento de la venta
	CreatedAt time.Time
	Lines     []SaleItem
}

// SaleItem representa una línea de la venta con el precio unitario congelado.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
