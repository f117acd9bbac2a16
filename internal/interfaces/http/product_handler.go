package http

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
)

type productService interface {
	Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, order string) ([]dto.ProductResponse, error)
	Search(ctx context.Context, query string) (*dto.ProductSearchResponse, error)
}

// ProductHandler maneja el CRUD admin del catálogo y el buscador del POS.
type ProductHandler struct {
	uc  productService
	log zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc productService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// NewForm godoc
// @Summary      Formulario de alta de producto
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductFormResponse
// @Router       /admin/products/new [get]
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return c.JSON(dto.ProductFormResponse{View: "product_form"})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      302
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/products/new [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := parseProductRequest(c)
	if err != nil {
		return validationError(c, err.Error())
	}
	if _, err := h.uc.Create(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return validationError(c, "name es requerido; stock no puede ser negativo; price debe ser >= 0, con 2 decimales como máximo y menor a 10000000000")
		}
		return internalError(c, h.log, err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// EditForm godoc
// @Summary      Formulario de edición de producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductFormResponse
// @Success      302
// @Router       /admin/products/edit/{id} [get]
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	product, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect("/admin", fiber.StatusFound)
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.ProductFormResponse{View: "product_form", Product: product})
}

// Update godoc
// @Summary      Editar producto (reemplaza todos los campos editables)
// @Tags         products
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      302
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/products/edit/{id} [post]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	in, err := parseProductRequest(c)
	if err != nil {
		return validationError(c, err.Error())
	}
	if _, err := h.uc.Update(c.Context(), int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Redirect("/admin", fiber.StatusFound)
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, "name es requerido; stock no puede ser negativo; price debe ser >= 0, con 2 decimales como máximo y menor a 10000000000")
		default:
			return internalError(c, h.log, err)
		}
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Success      302
// @Router       /admin/products/delete/{id} [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return internalError(c, h.log, err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// Search godoc
// @Summary      Buscar productos por nombre o SKU
// @Tags         products
// @Produce      json
// @Param        q    query  string  false  "Subcadena (vacío = más recientes)"
// @Success      200  {object}  dto.ProductSearchResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// parseProductRequest lee el producto desde JSON o formulario. En formulario, price y stock
// vacíos valen 0; valores no numéricos son error.
func parseProductRequest(c *fiber.Ctx) (dto.ProductRequest, error) {
	var in dto.ProductRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return in, errors.New("cuerpo inválido")
		}
		return in, nil
	}
	in.SKU = c.FormValue("sku")
	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	in.Price = decimal.Zero
	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return in, errors.New("price debe ser numérico")
		}
		in.Price = price
	}
	if raw := strings.TrimSpace(c.FormValue("stock")); raw != "" {
		stock, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, errors.New("stock debe ser entero")
		}
		in.Stock = stock
	}
	return in, nil
}

func validationError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
}
