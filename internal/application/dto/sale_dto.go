package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de venta enviada desde el POS.
type SaleLineRequest struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

// SaleItemResponse línea de venta con el precio congelado.
type SaleItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        int64              `json:"id"`
	SellerID  *int64             `json:"seller_id"`
	Items     string             `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Lines     []SaleItemResponse `json:"lines,omitempty"`
}

// POSViewResponse vista del punto de venta: catálogo por nombre y últimas ventas del vendedor.
type POSViewResponse struct {
	View     string            `json:"view"`
	Products []ProductResponse `json:"products"`
	Sales    []SaleResponse    `json:"sales"`
	Flash    *Flash            `json:"flash,omitempty"`
}

// SellRequest venta desde el POS: una línea (product_id, qty) o varias en items.
// Qty nil vale 1; un valor explícito menor a 1 se rechaza.
type SellRequest struct {
	ProductID int64             `json:"product_id"`
	Qty       *int64            `json:"qty,omitempty"`
	Items     []SaleLineRequest `json:"items,omitempty"`
}
