package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/auth"
	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

type authService interface {
	identityResolver
	Login(ctx context.Context, in dto.LoginRequest) (*auth.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler maneja login, logout y la redirección inicial según rol.
type AuthHandler struct {
	uc           authService
	cookieSecure bool
	log          zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc authService, cookieSecure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure, log: log}
}

// Index godoc
// @Summary      Redirección inicial según rol
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	switch GetRole(c) {
	case entity.RoleAdmin:
		return c.Redirect("/admin", fiber.StatusFound)
	case entity.RoleSeller:
		return c.Redirect("/pos", fiber.StatusFound)
	default:
		return c.Redirect("/login", fiber.StatusFound)
	}
}

// ShowLogin godoc
// @Summary      Vista de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ViewResponse
// @Router       /login [get]
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.JSON(dto.ViewResponse{View: "login"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      302
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailure) {
			h.log.Warn().Str("username", in.Username).Str("ip", c.IP()).Msg("login fallido")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario o contraseña incorrectos"})
		}
		return internalError(c, h.log, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), c.Cookies(SessionCookie)); err != nil {
		h.log.Warn().Err(err).Msg("logout: no se pudo borrar la sesión")
	}
	c.ClearCookie(SessionCookie)
	return c.Redirect("/login", fiber.StatusFound)
}

// internalError registra el error y responde 500.
func internalError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
