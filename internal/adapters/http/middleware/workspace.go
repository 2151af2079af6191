package middleware

import (
	"strings"
	"time"

	"hrdesk/internal/config"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys
const (
	LocalWorkspace = "workspace"
	LocalSession   = "session"
)

// Workspace binds the request to the browser's workspace, issuing the client
// cookie on first contact.
func Workspace(registry *services.WorkspaceRegistry, cfg config.CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Read or mint client id
		id := c.Cookies(cfg.Name)
		if _, err := uuid.Parse(id); err != nil {
			id = services.NewWorkspaceID()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.Name,
				Value:    id,
				Path:     "/",
				Domain:   cfg.Domain,
				Expires:  time.Now().Add(time.Duration(cfg.MaxAgeDays) * 24 * time.Hour),
				Secure:   cfg.Secure,
				HTTPOnly: true,
				SameSite: sameSite(cfg.SameSite),
			})
		}

		// 2. Resolve workspace
		ws, err := registry.Get(c.UserContext(), id)
		if err != nil {
			return response.BadRequest(c, domain.UserMessage(err))
		}

		c.Locals(LocalWorkspace, ws)
		return c.Next()
	}
}

// RequireSession rejects requests without an established session. A session
// still in registration mode is refused until its password is set.
func RequireSession() fiber.Handler {
	return requireSession(false)
}

// AllowRegistrationSession is RequireSession that also admits a session in
// registration mode, for the routes that finish registration.
func AllowRegistrationSession() fiber.Handler {
	return requireSession(true)
}

func requireSession(allowRegistration bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws := CurrentWorkspace(c)
		if ws == nil {
			return response.Unauthorized(c, domain.UserMessage(domain.ErrNotAuthenticated))
		}
		sess, err := ws.Session()
		if err != nil {
			return response.Unauthorized(c, domain.UserMessage(err))
		}
		if sess.RegistrationMode && !allowRegistration {
			return response.Forbidden(c, domain.UserMessage(domain.ErrForbidden))
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// RoleMiddleware allows only sessions holding one of the roles. Must run after RequireSession.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := c.Locals(LocalSession).(*domain.Session)
		if !ok {
			return response.Unauthorized(c, domain.UserMessage(domain.ErrNotAuthenticated))
		}

		for _, role := range allowedRoles {
			if sess.HasRole(role) {
				return c.Next()
			}
		}

		return response.Forbidden(c, domain.UserMessage(domain.ErrForbidden))
	}
}

// SuperAdminOnly middleware allows only the superadmin role
func SuperAdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin)
}

// CurrentWorkspace returns the workspace bound by Workspace
func CurrentWorkspace(c *fiber.Ctx) *services.Workspace {
	ws, _ := c.Locals(LocalWorkspace).(*services.Workspace)
	return ws
}

func sameSite(s string) string {
	switch strings.ToLower(s) {
	case "strict":
		return fiber.CookieSameSiteStrictMode
	case "none":
		return fiber.CookieSameSiteNoneMode
	default:
		return fiber.CookieSameSiteLaxMode
	}
}
