package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expotech/exhibition-service/internal/dto"
	"github.com/expotech/exhibition-service/internal/service"
)

type AvailabilityHandler struct {
	svc service.AvailabilityService
}

func NewAvailabilityHandler(svc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func (h *AvailabilityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/exhibitions/:id/equipment/availability", h.GetCatalogAvailability)
	g.GET("/exhibitions/:id/equipment/:equipmentID/availability", h.GetEquipmentAvailability)
	g.POST("/bookings", h.BookEquipment)
}

func (h *AvailabilityHandler) GetCatalogAvailability(c echo.Context) error {
	exhibitionID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid exhibition id")
	}

	items, err := h.svc.GetCatalogAvailability(c.Request().Context(), exhibitionID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]dto.EquipmentAvailabilityResponse, len(items))
	for i := range items {
		resp[i] = dto.ToAvailabilityResponse(&items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AvailabilityHandler) GetEquipmentAvailability(c echo.Context) error {
	exhibitionID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid exhibition id")
	}
	equipmentID, err := parseID(c.Param("equipmentID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	item, err := h.svc.GetEquipmentAvailability(c.Request().Context(), equipmentID, exhibitionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAvailabilityResponse(item))
}

func (h *AvailabilityHandler) BookEquipment(c echo.Context) error {
	var req dto.BookEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EquipmentID == 0 || req.ParticipantID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "equipment_id and participant_id are required")
	}
	if req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be positive")
	}

	booking, err := h.svc.BookEquipment(c.Request().Context(), service.BookEquipmentInput{
		EquipmentID:   req.EquipmentID,
		ParticipantID: req.ParticipantID,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// mapServiceError translates service errors into HTTP errors. Store errors fall
// through to a generic 500 so internal text never reaches the caller.
func mapServiceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExhibitionNotFound),
		errors.Is(err, service.ErrEquipmentNotFound),
		errors.Is(err, service.ErrParticipantNotFound),
		errors.Is(err, service.ErrPackageNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInsufficientStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
