package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

type userService interface {
	Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler maneja el alta y baja de cuentas desde el panel admin.
type UserHandler struct {
	uc  userService
	log zerolog.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc userService, log zerolog.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// NewForm godoc
// @Summary      Formulario de alta de usuario
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserFormResponse
// @Router       /admin/users/new [get]
func (h *UserHandler) NewForm(c *fiber.Ctx) error {
	return c.JSON(dto.UserFormResponse{View: "user_form", Roles: []string{entity.RoleSeller, entity.RoleAdmin}})
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "username, password, role (default seller)"
// @Success      302
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/users/new [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Create(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de usuario ya existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, "username y password son requeridos; role debe ser admin o seller")
		default:
			return internalError(c, h.log, err)
		}
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// Delete godoc
// @Summary      Eliminar vendedor (las cuentas admin no se eliminan)
// @Tags         users
// @Param        id   path  int  true  "ID del usuario"
// @Success      302
// @Router       /admin/users/delete/{id} [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	err = h.uc.Delete(c.Context(), int64(id))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrProtected):
		h.log.Warn().Int("user_id", id).Int64("by", GetUserID(c)).Msg("intento de borrar una cuenta admin")
	case errors.Is(err, domain.ErrNotFound):
	default:
		return internalError(c, h.log, err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}
