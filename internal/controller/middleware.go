package controller

import (
	"net/http"

	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/labstack/echo"
)

const (
	sessionCookieName = "bbl_session"
	adminContextKey   = "admin"
)

// sessionGuard resolves the session cookie into the signed-in admin and
// enforces per-group permissions.
type sessionGuard struct {
	sessions     *auth.SessionManager
	adminService service.Admin
}

func newSessionGuard(sessions *auth.SessionManager, adminService service.Admin) *sessionGuard {
	return &sessionGuard{sessions: sessions, adminService: adminService}
}

// RequireSession rejects requests without a valid session cookie and stores
// the resolved admin in the request context for downstream handlers.
func (g *sessionGuard) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
		}

		adminId, err := g.sessions.Verify(cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Session is invalid or expired"})
		}

		admin, err := g.adminService.GetAdminById(c.Request().Context(), adminId)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Session is invalid or expired"})
		}

		c.Set(adminContextKey, admin)

		return next(c)
	}
}

// RequirePermission gates a route group on one portal permission. Must run
// after RequireSession.
func (g *sessionGuard) RequirePermission(p entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin := currentAdmin(c)
			if admin == nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
			}

			for _, granted := range admin.Permissions {
				if granted == p {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorResponse{"You don't have access to this section"})
		}
	}
}

func currentAdmin(c echo.Context) *entity.AdminOutputModel {
	admin, _ := c.Get(adminContextKey).(*entity.AdminOutputModel)

	return admin
}
