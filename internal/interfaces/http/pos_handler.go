package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/application/sales"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	domsales "github.com/jhoicas/pos-admin/internal/domain/sales"
)

type salesService interface {
	RecordSaleLines(ctx context.Context, sellerID int64, refs []domsales.ItemRef) (*entity.Sale, error)
	ListBySeller(ctx context.Context, sellerID int64, limit int) ([]*entity.Sale, error)
}

type catalogLister interface {
	List(ctx context.Context, order string) ([]dto.ProductResponse, error)
}

// POSHandler punto de venta del vendedor.
type POSHandler struct {
	sales    salesService
	products catalogLister
	log      zerolog.Logger
}

// NewPOSHandler construye el handler.
func NewPOSHandler(salesUC salesService, products catalogLister, log zerolog.Logger) *POSHandler {
	return &POSHandler{sales: salesUC, products: products, log: log}
}

// View godoc
// @Summary      Vista POS: catálogo por nombre y últimas ventas del vendedor
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.POSViewResponse
// @Router       /pos [get]
func (h *POSHandler) View(c *fiber.Ctx) error {
	return h.render(c, nil)
}

// Sell godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y registra la venta en una sola transacción. El resultado llega en flash.
// @Tags         pos
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "product_id y qty (default 1), o items"
// @Success      200   {object}  dto.POSViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pos [post]
func (h *POSHandler) Sell(c *fiber.Ctx) error {
	refs, err := parseSellRequest(c)
	if err != nil {
		return validationError(c, err.Error())
	}
	sale, err := h.sales.RecordSaleLines(c.Context(), GetUserID(c), refs)
	var flash *dto.Flash
	switch {
	case err == nil:
		flash = &dto.Flash{Level: "success", Message: fmt.Sprintf("Venta registrada: total %s", sale.Total.StringFixed(2))}
	case errors.Is(err, domain.ErrProductNotFound):
		flash = &dto.Flash{Level: "danger", Message: "Producto no encontrado"}
	case errors.Is(err, domain.ErrInsufficientStock):
		flash = &dto.Flash{Level: "danger", Message: "Stock insuficiente"}
	case errors.Is(err, domain.ErrConflict):
		flash = &dto.Flash{Level: "warning", Message: "El stock cambió mientras se vendía, intente de nuevo"}
	case errors.Is(err, domain.ErrInvalidInput):
		return validationError(c, "qty o total fuera de rango")
	default:
		return internalError(c, h.log, err)
	}
	return h.render(c, flash)
}

func (h *POSHandler) render(c *fiber.Ctx, flash *dto.Flash) error {
	products, err := h.products.List(c.Context(), "name")
	if err != nil {
		return internalError(c, h.log, err)
	}
	history, err := h.sales.ListBySeller(c.Context(), GetUserID(c), sales.DefaultSellerHistory)
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := dto.POSViewResponse{View: "pos", Products: products, Sales: make([]dto.SaleResponse, 0, len(history)), Flash: flash}
	for _, s := range history {
		out.Sales = append(out.Sales, toSaleResponse(s))
	}
	return c.JSON(out)
}

// parseSellRequest acepta JSON (product_id/qty o items) o formulario (product_id, qty).
// qty ausente vale 1; qty menor a 1 es error.
func parseSellRequest(c *fiber.Ctx) ([]domsales.ItemRef, error) {
	var refs []domsales.ItemRef
	if c.Is("json") {
		var in dto.SellRequest
		if err := c.BodyParser(&in); err != nil {
			return nil, errors.New("cuerpo inválido")
		}
		switch {
		case len(in.Items) > 0:
			for _, it := range in.Items {
				refs = append(refs, domsales.ItemRef{ProductID: it.ProductID, Quantity: it.Qty})
			}
		case in.ProductID == 0:
			return nil, errors.New("product_id es requerido")
		default:
			qty := int64(1)
			if in.Qty != nil {
				qty = *in.Qty
			}
			refs = []domsales.ItemRef{{ProductID: in.ProductID, Quantity: qty}}
		}
	} else {
		rawID := strings.TrimSpace(c.FormValue("product_id"))
		if rawID == "" {
			return nil, errors.New("product_id es requerido")
		}
		productID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, errors.New("product_id debe ser entero")
		}
		qty := int64(1)
		if rawQty := strings.TrimSpace(c.FormValue("qty")); rawQty != "" {
			qty, err = strconv.ParseInt(rawQty, 10, 64)
			if err != nil {
				return nil, errors.New("qty debe ser entero")
			}
		}
		refs = []domsales.ItemRef{{ProductID: productID, Quantity: qty}}
	}

	for _, r := range refs {
		if r.Quantity < 1 || r.Quantity > domsales.MaxQuantity {
			return nil, fmt.Errorf("qty debe estar entre 1 y %d", domsales.MaxQuantity)
		}
	}
	return refs, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{ID: s.ID, SellerID: s.SellerID, Items: s.Items, Total: s.Total, CreatedAt: s.CreatedAt}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, dto.SaleItemResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return out
}
