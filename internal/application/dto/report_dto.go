package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleSummaryResponse venta reciente en el panel admin. Seller es null si el vendedor fue eliminado.
type SaleSummaryResponse struct {
	ID        int64           `json:"id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Seller    *string         `json:"seller"`
}

// DashboardResponse respuesta de GET /admin.
type DashboardResponse struct {
	View     string                `json:"view"`
	Sales    []SaleSummaryResponse `json:"sales"`
	Products []ProductResponse     `json:"products"`
	Users    []UserResponse        `json:"users"`
}

// SetupResponse respuesta de diagnóstico de GET /setup (cuentas sembradas por defecto).
type SetupResponse struct {
	Note    string   `json:"note"`
	Admin   string   `json:"admin"`
	Sellers []string `json:"sellers"`
}
