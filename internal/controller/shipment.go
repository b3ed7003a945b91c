package controller

import (
	"net/http"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type shipmentRoutesHandler struct {
	shipmentService service.Shipment
	validate        *validator.Validate
}

func newShipmentRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *shipmentRoutesHandler {
	h := &shipmentRoutesHandler{shipmentService: services.Shipment, validate: v}

	g := adminGroup(outer, "/shipments", guard, entity.PermissionTracking)
	g.GET("", h.GetShipments)
	g.POST("", h.PostShipment)
	g.PATCH("/:shipmentId", h.UpdateShipment)
	g.DELETE("", h.DeleteShipments)

	return h
}

// /shipments
func (h *shipmentRoutesHandler) GetShipments(c echo.Context) error {
	shipments, err := h.shipmentService.GetShipments(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, shipments); e != nil {
		return e
	}

	return nil
}

type postShipmentInput struct {
	ClientName            string `json:"clientName" validate:"required,max=100"`
	ClientEmail           string `json:"clientEmail" validate:"omitempty,email"`
	ConsignmentNumber     string `json:"consignmentNumber" validate:"max=100"`
	ShakersNumber         string `json:"shakersNumber" validate:"max=100"`
	Origin                string `json:"origin" validate:"required,max=100"`
	Destination           string `json:"destination" validate:"required,max=100"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate" validate:"max=30"`
	ShippingCompany       string `json:"shippingCompany" validate:"max=100"`
	Description           string `json:"description" validate:"max=1000"`
	Status                string `json:"status" validate:"omitempty,oneof=Pending 'In Transit' Delivered Delayed Exception"`
}

// /shipments
func (h *shipmentRoutesHandler) PostShipment(c echo.Context) error {
	var input postShipmentInput
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

	model := &entity.CreateShipmentInput{
		ClientName:            input.ClientName,
		ClientEmail:           input.ClientEmail,
		ConsignmentNumber:     input.ConsignmentNumber,
		ShakersNumber:         input.ShakersNumber,
		Origin:                input.Origin,
		Destination:           input.Destination,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		ShippingCompany:       input.ShippingCompany,
		Description:           input.Description,
		Status:                entity.ShipmentStatus(input.Status),
	}

	shipment, err := h.shipmentService.AddShipment(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, shipment); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown shipment status"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type updateShipmentInput struct {
	ShipmentId            string `param:"shipmentId" validate:"required,max=100"`
	Description           string `json:"description" validate:"max=1000"`
	Destination           string `json:"destination" validate:"max=100"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate" validate:"max=30"`
	Status                string `json:"status" validate:"required,oneof=Pending 'In Transit' Delivered Delayed Exception"`
	Location              string `json:"location" validate:"max=100"`
	Remarks               string `json:"remarks" validate:"max=500"`
}

// /shipments/:shipmentId
func (h *shipmentRoutesHandler) UpdateShipment(c echo.Context) error {
	var input updateShipmentInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.ShipmentId = c.Param("shipmentId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateShipmentInput{
		Description:           input.Description,
		Destination:           input.Destination,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		Status:                entity.ShipmentStatus(input.Status),
		Location:              input.Location,
		Remarks:               input.Remarks,
	}

	shipment, err := h.shipmentService.UpdateShipment(c.Request().Context(), input.ShipmentId, model)
	if err == nil {
		if e := c.JSON(http.StatusOK, shipment); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrShipmentNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no shipment with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown shipment status"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type deleteShipmentsInput struct {
	Ids []string `json:"ids" validate:"required,min=1,dive,required"`
}

// /shipments
func (h *shipmentRoutesHandler) DeleteShipments(c echo.Context) error {
	var input deleteShipmentsInput
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

	if err := h.shipmentService.DeleteShipments(c.Request().Context(), input.Ids); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"deleted": true}); e != nil {
		return e
	}

	return nil
}
