package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

// Locals key del principal autenticado.
const LocalPrincipal = "principal"

// Rutas a las que redirige el gate.
const (
	PathLogin        = "/Account/Login"
	PathEmployeeList = "/Employee/List"
)

// Access nivel de acceso declarado por cada ruta.
type Access int

const (
	// AccessPublic no exige sesión.
	AccessPublic Access = iota
	// AccessOptional carga el principal si existe pero nunca redirige.
	AccessOptional
	// AccessAuthenticated exige sesión válida.
	AccessAuthenticated
	// AccessAdmin exige sesión válida con rol Admin.
	AccessAdmin
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessOptional:
		return "optional"
	case AccessAuthenticated:
		return "authenticated"
	case AccessAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// sessionAuthenticator es lo que el middleware necesita del caso de uso de auth.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

// SessionMiddleware resuelve una vez por request el principal a partir de la cookie de sesión.
// Cookies inválidas o de sesiones expiradas se borran; nunca corta la cadena.
func SessionMiddleware(authn sessionAuthenticator, cookies CookieConfig, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookies.Name)
		if token == "" {
			return c.Next()
		}
		p, err := authn.Authenticate(c.UserContext(), token)
		switch {
		case err == nil:
			c.Locals(LocalPrincipal, p)
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
			clearSessionCookie(c, cookies)
		default:
			log.Error().Err(err).Msg("validar sesión")
			clearSessionCookie(c, cookies)
		}
		return c.Next()
	}
}

// Authorize aplica el nivel de acceso de la ruta. action es el verbo del mensaje
// de permiso denegado ("create", "update", "delete").
func Authorize(access Access, action string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if access == AccessPublic || access == AccessOptional {
			return c.Next()
		}
		p := GetPrincipal(c)
		if p == nil {
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere iniciar sesión"})
			}
			return c.Redirect(PathLogin, fiber.StatusSeeOther)
		}
		if access == AccessAdmin && !p.IsAdmin() {
			msg := permissionMessage(action)
			log.Warn().
				Str("user", p.Username).
				Str("role", p.Role).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("acceso denegado")
			if wantsJSON(c) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
			}
			setFlash(c, dto.FlashError, msg)
			return c.Redirect(PathEmployeeList, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

func permissionMessage(action string) string {
	if action == "" {
		action = "modify"
	}
	return "You do not have permission to " + action + " employees."
}

// GetPrincipal devuelve el principal del request o nil si no hay sesión.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// GetRole devuelve el rol del principal; vacío si no hay sesión.
func GetRole(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.Role
	}
	return ""
}

// GetUsername devuelve el username (email) del principal; vacío si no hay sesión.
func GetUsername(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.Username
	}
	return ""
}

// wantsJSON indica un cliente programático: Accept application/json o XHR.
func wantsJSON(c *fiber.Ctx) bool {
	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return true
	}
	return c.XHR()
}
