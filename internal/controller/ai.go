package controller

import (
	"net/http"

	"bbl-admins-portal/internal/ai"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type aiRoutesHandler struct {
	aiService service.AI
	validate  *validator.Validate
}

func newAIRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *aiRoutesHandler {
	h := &aiRoutesHandler{aiService: services.AI, validate: v}

	g := outer.Group("/admin/ai", guard.RequireSession)
	g.POST("/auction-description", h.GenerateAuctionDescription, guard.RequirePermission(entity.PermissionAuctionListing))
	g.POST("/delay-reason", h.GenerateDelayReason, guard.RequirePermission(entity.PermissionTracking))
	g.POST("/csv-analysis", h.AnalyzeAuctionCSV, guard.RequirePermission(entity.PermissionAuctionListing))
	g.POST("/assistant", h.Ask, guard.RequirePermission(entity.PermissionDashboard))

	return h
}

type auctionDescriptionInput struct {
	ItemName string `json:"itemName" validate:"required,max=100"`
	Keywords string `json:"keywords" validate:"required,max=300"`
}

// /admin/ai/auction-description
func (h *aiRoutesHandler) GenerateAuctionDescription(c echo.Context) error {
	var input auctionDescriptionInput
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

	description, err := h.aiService.GenerateAuctionDescription(c.Request().Context(), input.ItemName, input.Keywords)
	if err != nil {
		return aiError(c, err)
	}

	if e := c.JSON(http.StatusOK, map[string]string{"description": description}); e != nil {
		return e
	}

	return nil
}

type delayReasonInput struct {
	ShipmentId           string `json:"shipmentId" validate:"required,max=100"`
	CurrentStatus        string `json:"currentStatus" validate:"required,max=50"`
	Origin               string `json:"origin" validate:"required,max=100"`
	Destination          string `json:"destination" validate:"required,max=100"`
	CurrentLocation      string `json:"currentLocation" validate:"max=100"`
	ShippingCompany      string `json:"shippingCompany" validate:"max=100"`
	ExceptionDescription string `json:"exceptionDescription" validate:"max=1000"`
}

// /admin/ai/delay-reason
func (h *aiRoutesHandler) GenerateDelayReason(c echo.Context) error {
	var input delayReasonInput
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

	reason, err := h.aiService.GenerateDelayReason(c.Request().Context(), &ai.DelayReasonInput{
		ShipmentId:           input.ShipmentId,
		CurrentStatus:        input.CurrentStatus,
		Origin:               input.Origin,
		Destination:          input.Destination,
		CurrentLocation:      input.CurrentLocation,
		ShippingCompany:      input.ShippingCompany,
		ExceptionDescription: input.ExceptionDescription,
	})
	if err != nil {
		return aiError(c, err)
	}

	if e := c.JSON(http.StatusOK, map[string]string{"delayReason": reason}); e != nil {
		return e
	}

	return nil
}

type csvAnalysisInput struct {
	CsvData string `json:"csvData" validate:"required"`
}

// /admin/ai/csv-analysis
func (h *aiRoutesHandler) AnalyzeAuctionCSV(c echo.Context) error {
	var input csvAnalysisInput
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

	analysis, err := h.aiService.AnalyzeAuctionCSV(c.Request().Context(), input.CsvData)
	if err != nil {
		return aiError(c, err)
	}

	if e := c.JSON(http.StatusOK, analysis); e != nil {
		return e
	}

	return nil
}

type assistantInput struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// /admin/ai/assistant
func (h *aiRoutesHandler) Ask(c echo.Context) error {
	var input assistantInput
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

	answer, err := h.aiService.Ask(c.Request().Context(), input.Question)
	if err != nil {
		return aiError(c, err)
	}

	if e := c.JSON(http.StatusOK, map[string]string{"answer": answer}); e != nil {
		return e
	}

	return nil
}

func aiError(c echo.Context, err error) error {
	switch err {
	case service.ErrAIUnavailable:
		if e := c.JSON(http.StatusServiceUnavailable, errorResponse{"The AI assistant is currently unavailable"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
