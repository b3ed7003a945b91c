package controller

import (
	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, sessions *auth.SessionManager) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	guard := newSessionGuard(sessions, services.Admin)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, sessions, guard, validate)
	newTrackingRoutesHandler(api, services)

	// Public surfaces: auction browsing + bidding, packing list forms.
	newAuctionRoutesHandler(api, services, guard, validate)
	newPackingListRoutesHandler(api, services, guard, validate)

	// Admin-only surfaces.
	newShipmentRoutesHandler(api, services, guard, validate)
	newAdminRoutesHandler(api, services, guard, validate)
	newChatRoutesHandler(api, services, guard, validate)
	newAIRoutesHandler(api, services, guard, validate)
}

// adminGroup builds a session-checked, permission-gated subgroup.
func adminGroup(api *echo.Group, prefix string, guard *sessionGuard, p entity.Permission) *echo.Group {
	return api.Group(prefix, guard.RequireSession, guard.RequirePermission(p))
}
