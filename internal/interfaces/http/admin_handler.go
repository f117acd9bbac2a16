package http

import (
	"bytes"
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/dto"
)

type reportService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ExportSalesCSV(ctx context.Context, w io.Writer) error
	ExportSalesPDF(ctx context.Context) ([]byte, error)
}

// AdminHandler panel admin y exports de ventas.
type AdminHandler struct {
	uc  reportService
	log zerolog.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc reportService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// Dashboard godoc
// @Summary      Panel admin: 50 ventas recientes, catálogo y usuarios
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// ExportSalesCSV godoc
// @Summary      Exportar todas las ventas en CSV
// @Tags         admin
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /admin/export/sales [get]
func (h *AdminHandler) ExportSalesCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportSalesCSV(c.Context(), &buf); err != nil {
		return internalError(c, h.log, err)
	}
	c.Attachment("sales_export.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// ExportSalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /admin/export/sales.pdf [get]
func (h *AdminHandler) ExportSalesPDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportSalesPDF(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	c.Attachment("sales_report.pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

// Setup godoc
// @Summary      Diagnóstico de cuentas por defecto (solo con APP_ENABLE_SETUP=true)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SetupResponse
// @Router       /setup [get]
func Setup(c *fiber.Ctx) error {
	return c.JSON(dto.SetupResponse{
		Note:    "Deshabilitar /setup en producción",
		Admin:   "admin / admin123",
		Sellers: []string{"seller1..seller4 con password 1234"},
	})
}
