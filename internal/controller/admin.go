package controller

import (
	"net/http"
	"time"

	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	adminService service.Admin
	sessions     *auth.SessionManager
	validate     *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, sessions *auth.SessionManager, guard *sessionGuard, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{adminService: services.Admin, sessions: sessions, validate: v}

	outer.POST("/auth/login", h.Login)
	outer.POST("/auth/logout", h.Logout)

	// Set-password flow for invited admins; the link itself is the secret.
	outer.GET("/invitations/:adminId", h.GetInvitation)
	outer.POST("/invitations/:adminId/password", h.SetPassword)

	me := outer.Group("/admin/me", guard.RequireSession)
	me.GET("", h.GetMyProfile)
	me.PATCH("", h.UpdateMyProfile)

	return h
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	admin, err := h.adminService.Authenticate(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid email or password"}); e != nil {
				return e
			}
		case service.ErrNotApproved:
			if e := c.JSON(http.StatusForbidden, errorResponse{"Your account has not been approved yet"}); e != nil {
				return e
			}
		default:
			if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
				return e
			}
		}

		return err
	}

	token, err := h.sessions.Issue(admin.Id, time.Now().UTC())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if e := c.JSON(http.StatusOK, admin); e != nil {
		return e
	}

	return nil
}

// /auth/logout
func (h *authRoutesHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if e := c.JSON(http.StatusOK, map[string]bool{"loggedOut": true}); e != nil {
		return e
	}

	return nil
}

// /invitations/:adminId
func (h *authRoutesHandler) GetInvitation(c echo.Context) error {
	admin, err := h.adminService.GetInvitation(c.Request().Context(), c.Param("adminId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, admin); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no invitation with given id"}); e != nil {
			return e
		}
	case service.ErrInvitationExpired:
		if e := c.JSON(http.StatusGone, errorResponse{"This invitation link has expired"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type setPasswordInput struct {
	AdminId  string `param:"adminId" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// /invitations/:adminId/password
func (h *authRoutesHandler) SetPassword(c echo.Context) error {
	var input setPasswordInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.AdminId = c.Param("adminId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	admin, err := h.adminService.SetPassword(c.Request().Context(), input.AdminId, input.Password)
	if err == nil {
		if e := c.JSON(http.StatusOK, admin); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no invitation with given id"}); e != nil {
			return e
		}
	case service.ErrInvitationExpired:
		if e := c.JSON(http.StatusGone, errorResponse{"This invitation link has expired"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/me
func (h *authRoutesHandler) GetMyProfile(c echo.Context) error {
	admin := currentAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	if e := c.JSON(http.StatusOK, admin); e != nil {
		return e
	}

	return nil
}

type updateProfileInput struct {
	Name            string `json:"name" validate:"omitempty,max=100"`
	AvatarUrl       string `json:"avatarUrl" validate:"omitempty,url"`
	Password        string `json:"password" validate:"omitempty,min=8,max=100"`
	CurrentPassword string `json:"currentPassword" validate:"required_with=Password"`
}

// /admin/me
func (h *authRoutesHandler) UpdateMyProfile(c echo.Context) error {
	admin := currentAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	var input updateProfileInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateProfileInput{
		Name:            input.Name,
		AvatarUrl:       input.AvatarUrl,
		Password:        input.Password,
		CurrentPassword: input.CurrentPassword,
	}

	updated, err := h.adminService.UpdateMyProfile(c.Request().Context(), admin.Id, model)
	if err == nil {
		if e := c.JSON(http.StatusOK, updated); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrWrongPassword:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Current password is incorrect"}); e != nil {
			return e
		}
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no admin with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type adminRoutesHandler struct {
	adminService service.Admin
	validate     *validator.Validate
}

func newAdminRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *adminRoutesHandler {
	h := &adminRoutesHandler{adminService: services.Admin, validate: v}

	g := adminGroup(outer, "/admin/admins", guard, entity.PermissionSettings)
	g.GET("", h.GetAdmins)
	g.POST("/invite", h.InviteAdmin)
	g.POST("/:adminId/approve", h.ApproveAdmin)
	g.PUT("/:adminId/permissions", h.UpdatePermissions)
	g.DELETE("/:adminId", h.RemoveAdmin)

	return h
}

// /admin/admins
func (h *adminRoutesHandler) GetAdmins(c echo.Context) error {
	admins, err := h.adminService.GetAdmins(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, admins); e != nil {
		return e
	}

	return nil
}

type inviteAdminInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// /admin/admins/invite
func (h *adminRoutesHandler) InviteAdmin(c echo.Context) error {
	var input inviteAdminInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	admin, err := h.adminService.Invite(c.Request().Context(), &entity.InviteAdminInput{Name: input.Name, Email: input.Email})
	if err == nil {
		if e := c.JSON(http.StatusCreated, admin); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDuplicateEmail:
		if e := c.JSON(http.StatusConflict, errorResponse{"An admin with this email already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/admins/:adminId/approve
func (h *adminRoutesHandler) ApproveAdmin(c echo.Context) error {
	admin, err := h.adminService.Approve(c.Request().Context(), c.Param("adminId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, admin); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no admin with given id"}); e != nil {
			return e
		}
	case service.ErrPasswordNotSet:
		if e := c.JSON(http.StatusConflict, errorResponse{"This admin has not set a password yet"}); e != nil {
			return e
		}
	case service.ErrAlreadyApproved:
		if e := c.JSON(http.StatusConflict, errorResponse{"This admin is already approved"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type updatePermissionsInput struct {
	AdminId     string   `param:"adminId" validate:"required,max=100"`
	Permissions []string `json:"permissions" validate:"required"`
}

// /admin/admins/:adminId/permissions
func (h *adminRoutesHandler) UpdatePermissions(c echo.Context) error {
	var input updatePermissionsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.AdminId = c.Param("adminId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	permissions := make([]entity.Permission, 0, len(input.Permissions))
	for _, p := range input.Permissions {
		permissions = append(permissions, entity.Permission(p))
	}

	admin, err := h.adminService.UpdatePermissions(c.Request().Context(), input.AdminId, permissions)
	if err == nil {
		if e := c.JSON(http.StatusOK, admin); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no admin with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidPermission:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown permission"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/admins/:adminId
func (h *adminRoutesHandler) RemoveAdmin(c echo.Context) error {
	if err := h.adminService.Remove(c.Request().Context(), c.Param("adminId")); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"removed": true}); e != nil {
		return e
	}

	return nil
}
