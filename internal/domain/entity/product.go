package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock puede quedar negativo si la política de ventas lo permite; Version se incrementa
// en cada cambio de stock (control de concurrencia optimista).
type Product struct {
	ID          int64
	SKU         string // opcional, no único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Stock       int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MaxAmount tope exclusivo de precios y totales (columnas NUMERIC(12,2)).
var MaxAmount = decimal.New(1, 10)

// ValidAmount reporta si v es no negativo, tiene a lo sumo 2 decimales y es menor a MaxAmount.
func ValidAmount(v decimal.Decimal) bool {
	return !v.IsNegative() && v.Equal(v.Round(2)) && v.LessThan(MaxAmount)
}
