package controller

import (
	"net/http"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type chatRoutesHandler struct {
	chatService service.Chat
	validate    *validator.Validate
}

func newChatRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *chatRoutesHandler {
	h := &chatRoutesHandler{chatService: services.Chat, validate: v}

	g := adminGroup(outer, "/admin/chat", guard, entity.PermissionChat)
	g.GET("/messages", h.GetMessages)
	g.POST("/messages", h.PostMessage)
	g.PATCH("/messages/:messageId", h.EditMessage)
	g.DELETE("/messages/:messageId", h.DeleteMessage)
	g.DELETE("/messages", h.ClearHistory)

	return h
}

// /admin/chat/messages
func (h *chatRoutesHandler) GetMessages(c echo.Context) error {
	messages, err := h.chatService.GetMessages(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, messages); e != nil {
		return e
	}

	return nil
}

type postMessageInput struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// /admin/chat/messages
func (h *chatRoutesHandler) PostMessage(c echo.Context) error {
	admin := currentAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	var input postMessageInput
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

	message, err := h.chatService.PostMessage(c.Request().Context(), admin.Id, input.Message)
	if err == nil {
		if e := c.JSON(http.StatusCreated, message); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Session is invalid or expired"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type editMessageInput struct {
	MessageId string `param:"messageId" validate:"required,max=100"`
	Message   string `json:"message" validate:"required,max=2000"`
}

// /admin/chat/messages/:messageId
func (h *chatRoutesHandler) EditMessage(c echo.Context) error {
	admin := currentAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	var input editMessageInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.MessageId = c.Param("messageId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	message, err := h.chatService.EditMessage(c.Request().Context(), admin.Id, input.MessageId, input.Message)
	if err == nil {
		if e := c.JSON(http.StatusOK, message); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrMessageNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no message with given id"}); e != nil {
			return e
		}
	case service.ErrNotMessageAuthor:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the author can edit a message"}); e != nil {
			return e
		}
	case service.ErrEditWindowClosed:
		if e := c.JSON(http.StatusConflict, errorResponse{"This message can no longer be edited"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/chat/messages/:messageId
func (h *chatRoutesHandler) DeleteMessage(c echo.Context) error {
	admin := currentAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	err := h.chatService.DeleteMessage(c.Request().Context(), admin.Id, c.Param("messageId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]bool{"deleted": true}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrMessageNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no message with given id"}); e != nil {
			return e
		}
	case service.ErrNotMessageAuthor:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the author can delete a message"}); e != nil {
			return e
		}
	case service.ErrEditWindowClosed:
		if e := c.JSON(http.StatusConflict, errorResponse{"This message can no longer be deleted"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/chat/messages
func (h *chatRoutesHandler) ClearHistory(c echo.Context) error {
	if err := h.chatService.ClearHistory(c.Request().Context()); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"cleared": true}); e != nil {
		return e
	}

	return nil
}
