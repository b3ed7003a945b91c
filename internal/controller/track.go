package controller

import (
	"net/http"

	"bbl-admins-portal/internal/service"

	"github.com/labstack/echo"
)

type trackingRoutesHandler struct {
	shipmentService service.Shipment
}

func newTrackingRoutesHandler(outer *echo.Group, services *service.Services) *trackingRoutesHandler {
	h := &trackingRoutesHandler{shipmentService: services.Shipment}

	outer.GET("/track/:id", h.TrackShipment)

	return h
}

// /track/:id
func (h *trackingRoutesHandler) TrackShipment(c echo.Context) error {
	query := c.Param("id")
	if query == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Tracking id is required"}); e != nil {
			return e
		}

		return nil
	}

	shipment, err := h.shipmentService.FindShipment(c.Request().Context(), query)
	if err == nil {
		if e := c.JSON(http.StatusOK, shipment); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrShipmentNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"No shipment matches this tracking id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
