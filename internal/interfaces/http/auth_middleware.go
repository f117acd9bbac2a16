package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/auth"
	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// SessionCookie nombre de la cookie de sesión.
const SessionCookie = "pos_session"

// LocalIdentity key de c.Locals con el *auth.Identity de la petición.
const LocalIdentity = "identity"

// identityResolver es el contrato mínimo que necesita el middleware para resolver la sesión.
// Lo implementa *auth.AuthUseCase.
type identityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (*auth.Identity, error)
}

// SessionMiddleware resuelve la cookie de sesión y deja la identidad en c.Locals.
// Una cookie ausente o inválida deja la petición como anónima; el Gate decide.
func SessionMiddleware(resolver identityResolver, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}
		identity, err := resolver.CurrentIdentity(c.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("resolver sesión")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo validar la sesión"})
		}
		if identity != nil {
			c.Locals(LocalIdentity, identity)
		}
		return c.Next()
	}
}

// Capability permiso requerido por un grupo de rutas.
type Capability int

const (
	CapabilityAny    Capability = iota // cualquier usuario autenticado
	CapabilityAdmin                    // solo admin
	CapabilitySeller                   // solo seller
)

// Allows indica si el rol satisface la capacidad.
func (c Capability) Allows(role string) bool {
	switch c {
	case CapabilityAny:
		return entity.ValidRole(role)
	case CapabilityAdmin:
		return role == entity.RoleAdmin
	case CapabilitySeller:
		return role == entity.RoleSeller
	default:
		return false
	}
}

// Gate exige una sesión cuyo rol satisfaga capability; si no, redirige a /login.
// Debe usarse DESPUÉS de SessionMiddleware.
func Gate(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		if identity == nil || !capability.Allows(identity.User.Role) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad de la petición; nil si es anónima.
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	v, _ := c.Locals(LocalIdentity).(*auth.Identity)
	return v
}

// GetUserID devuelve el ID del usuario autenticado; 0 si es anónima.
func GetUserID(c *fiber.Ctx) int64 {
	if identity := GetIdentity(c); identity != nil {
		return identity.User.ID
	}
	return 0
}

// GetRole devuelve el rol del usuario autenticado; "" si es anónima.
func GetRole(c *fiber.Ctx) string {
	if identity := GetIdentity(c); identity != nil {
		return identity.User.Role
	}
	return ""
}
