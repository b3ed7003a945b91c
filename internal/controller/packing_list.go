package controller

import (
	"errors"
	"net/http"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type packingListRoutesHandler struct {
	packingListService service.PackingList
	validate           *validator.Validate
}

func newPackingListRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *packingListRoutesHandler {
	h := &packingListRoutesHandler{packingListService: services.PackingList, validate: v}

	// Clients fill forms without signing in; the form id is shared by link.
	outer.GET("/forms/:formId", h.GetPublicForm)
	outer.POST("/forms/:formId/submissions", h.SubmitForm)

	g := adminGroup(outer, "/admin/forms", guard, entity.PermissionPackingList)
	g.GET("", h.GetForms)
	g.POST("", h.PostForm)
	g.GET("/:formId", h.GetForm)
	g.DELETE("/:formId/submissions", h.DeleteSubmissions)

	return h
}

// publicFormView strips submissions from the client-facing form payload.
type publicFormView struct {
	Id          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Fields      []entity.FormField `json:"fields"`
}

// /forms/:formId
func (h *packingListRoutesHandler) GetPublicForm(c echo.Context) error {
	form, err := h.packingListService.GetFormById(c.Request().Context(), c.Param("formId"))
	if err == nil {
		view := publicFormView{Id: form.Id, Title: form.Title, Description: form.Description, Fields: form.Fields}
		if e := c.JSON(http.StatusOK, view); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrFormNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no form with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type submitFormInput struct {
	FormId string         `param:"formId" validate:"required,max=100"`
	Name   string         `json:"name" validate:"required,max=100"`
	Email  string         `json:"email" validate:"required,email"`
	Data   map[string]any `json:"data" validate:"required"`
}

// /forms/:formId/submissions
func (h *packingListRoutesHandler) SubmitForm(c echo.Context) error {
	var input submitFormInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.FormId = c.Param("formId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: input.Name, Email: input.Email},
		Data:      input.Data,
	}

	submission, err := h.packingListService.Submit(c.Request().Context(), input.FormId, model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, submission); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrFormNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no form with given id"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrInvalidSubmission):
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/forms
func (h *packingListRoutesHandler) GetForms(c echo.Context) error {
	forms, err := h.packingListService.GetForms(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, forms); e != nil {
		return e
	}

	return nil
}

// /admin/forms/:formId
func (h *packingListRoutesHandler) GetForm(c echo.Context) error {
	form, err := h.packingListService.GetFormById(c.Request().Context(), c.Param("formId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, form); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrFormNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no form with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type formFieldInput struct {
	Type     string   `json:"type" validate:"required,oneof=text textarea checkbox dropdown email tel name surname"`
	Label    string   `json:"label" validate:"required,max=100"`
	Required bool     `json:"required"`
	Options  []string `json:"options" validate:"dive,max=100"`
}

type postFormInput struct {
	Title              string           `json:"title" validate:"required,max=100"`
	Description        string           `json:"description" validate:"max=500"`
	TrackingNumberType string           `json:"trackingNumberType" validate:"omitempty,oneof=consignment shakers"`
	TrackingNumber     string           `json:"trackingNumber" validate:"max=100"`
	Fields             []formFieldInput `json:"fields" validate:"required,min=1,dive"`
}

// /admin/forms
func (h *packingListRoutesHandler) PostForm(c echo.Context) error {
	var input postFormInput
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

	fields := make([]entity.FormField, 0, len(input.Fields))
	for _, f := range input.Fields {
		options := make([]entity.FormFieldOption, 0, len(f.Options))
		for _, opt := range f.Options {
			options = append(options, entity.FormFieldOption{Value: opt})
		}
		fields = append(fields, entity.FormField{
			Type:     entity.FormFieldType(f.Type),
			Label:    f.Label,
			Required: f.Required,
			Options:  options,
		})
	}

	model := &entity.CreateFormInput{
		Title:       input.Title,
		Description: input.Description,
		Fields:      fields,
	}
	if input.TrackingNumberType != "" && input.TrackingNumber != "" {
		model.TrackingNumber = &entity.TrackingNumberRef{
			Type:   entity.TrackingNumberType(input.TrackingNumberType),
			Number: input.TrackingNumber,
		}
	}

	form, err := h.packingListService.CreateForm(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, form); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidFormDef:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Form definition is invalid"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type deleteSubmissionsInput struct {
	FormId string   `param:"formId" validate:"required,max=100"`
	Ids    []string `json:"ids" validate:"required,min=1,dive,required"`
}

// /admin/forms/:formId/submissions
func (h *packingListRoutesHandler) DeleteSubmissions(c echo.Context) error {
	var input deleteSubmissionsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.FormId = c.Param("formId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	err := h.packingListService.DeleteSubmissions(c.Request().Context(), input.FormId, input.Ids)
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]bool{"deleted": true}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrFormNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no form with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
