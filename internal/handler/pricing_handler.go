package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expotech/exhibition-service/internal/dto"
	"github.com/expotech/exhibition-service/internal/service"
)

type PricingHandler struct {
	svc service.PricingService
}

func NewPricingHandler(svc service.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func (h *PricingHandler) RegisterRoutes(g *echo.Group, cacheMw echo.MiddlewareFunc) {
	g.POST("/pricing/calculate", h.CalculatePrice)
	if cacheMw != nil {
		g.GET("/packages/:id/price", h.GetPackagePrice, cacheMw)
	} else {
		g.GET("/packages/:id/price", h.GetPackagePrice)
	}
}

func (h *PricingHandler) CalculatePrice(c echo.Context) error {
	var req dto.CalculatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ExhibitionID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "exhibition_id is required")
	}
	if req.BoothSize <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "booth_size must be positive")
	}

	var registrationDate time.Time
	if req.RegistrationDate != "" {
		parsed, err := parseDate(req.RegistrationDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid registration_date")
		}
		registrationDate = parsed
	}

	quote, err := h.svc.CalculateBoothPrice(c.Request().Context(), service.CalculateBoothPriceInput{
		ExhibitionID:     req.ExhibitionID,
		BoothSize:        req.BoothSize,
		RegistrationDate: registrationDate,
		ParticipantCount: req.ParticipantCount,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPriceQuoteResponse(quote))
}

func (h *PricingHandler) GetPackagePrice(c echo.Context) error {
	packageID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	price, err := h.svc.GetPackagePrice(c.Request().Context(), packageID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPackagePriceResponse(price))
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
