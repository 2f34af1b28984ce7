package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/expotech/exhibition-service/internal/dto"
	"github.com/expotech/exhibition-service/internal/models"
	"github.com/expotech/exhibition-service/internal/service"
)

// --- Mock PricingService ---

type mockPricingService struct {
	calculateFn func(ctx context.Context, input service.CalculateBoothPriceInput) (*service.PriceQuote, error)
	packageFn   func(ctx context.Context, packageID uint) (*service.PackagePrice, error)
}

func (m *mockPricingService) CalculateBoothPrice(ctx context.Context, input service.CalculateBoothPriceInput) (*service.PriceQuote, error) {
	return m.calculateFn(ctx, input)
}
func (m *mockPricingService) GetPackagePrice(ctx context.Context, packageID uint) (*service.PackagePrice, error) {
	return m.packageFn(ctx, packageID)
}

// --- Tests ---

func TestCalculatePrice_Handler_Success(t *testing.T) {
	svc := &mockPricingService{
		calculateFn: func(ctx context.Context, input service.CalculateBoothPriceInput) (*service.PriceQuote, error) {
			return &service.PriceQuote{
				BasePrice:      1000,
				DiscountAmount: 150,
				FinalPrice:     850,
				AppliedDiscounts: []service.AppliedDiscount{
					{RuleName: "early bird", RuleType: "early_bird", DiscountAmount: 150, DiscountPercentage: 15},
				},
				PricePerSqm: 50,
				BoothSize:   20,
			}, nil
		},
	}

	e := echo.New()
	body := `{"exhibition_id":1,"booth_size":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPricingHandler(svc)
	err := h.CalculatePrice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PriceQuoteResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp.BasePrice)
	assert.Equal(t, 150.0, resp.DiscountAmount)
	assert.Equal(t, 850.0, resp.FinalPrice)
	assert.Equal(t, 50.0, resp.PricePerSqm)
	assert.Len(t, resp.AppliedDiscounts, 1)
	assert.Equal(t, "early bird", resp.AppliedDiscounts[0].RuleName)
	assert.Equal(t, 15.0, resp.AppliedDiscounts[0].DiscountPercentage)
}

func TestCalculatePrice_Handler_ParsesRegistrationDate(t *testing.T) {
	var captured service.CalculateBoothPriceInput
	svc := &mockPricingService{
		calculateFn: func(ctx context.Context, input service.CalculateBoothPriceInput) (*service.PriceQuote, error) {
			captured = input
			return &service.PriceQuote{}, nil
		},
	}

	e := echo.New()
	body := `{"exhibition_id":1,"booth_size":20,"registration_date":"2026-02-10","participant_count":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPricingHandler(svc)
	err := h.CalculatePrice(c)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), captured.RegistrationDate)
	assert.Equal(t, 3, captured.ParticipantCount)
}

func TestCalculatePrice_Handler_InvalidBoothSize(t *testing.T) {
	e := echo.New()
	body := `{"exhibition_id":1,"booth_size":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPricingHandler(nil)
	err := h.CalculatePrice(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCalculatePrice_Handler_InvalidDate(t *testing.T) {
	e := echo.New()
	body := `{"exhibition_id":1,"booth_size":20,"registration_date":"next tuesday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPricingHandler(nil)
	err := h.CalculatePrice(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCalculatePrice_Handler_ExhibitionNotFound(t *testing.T) {
	svc := &mockPricingService{
		calculateFn: func(ctx context.Context, input service.CalculateBoothPriceInput) (*service.PriceQuote, error) {
			return nil, service.ErrExhibitionNotFound
		},
	}

	e := echo.New()
	body := `{"exhibition_id":999,"booth_size":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPricingHandler(svc)
	err := h.CalculatePrice(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetPackagePrice_Handler_Success(t *testing.T) {
	earlyBird := 2400.0
	svc := &mockPricingService{
		packageFn: func(ctx context.Context, packageID uint) (*service.PackagePrice, error) {
			return &service.PackagePrice{
				PackageID:    packageID,
				CurrentPrice: 2400,
				PriceType:    models.PriceEarlyBird,
				Package: &models.Package{
					ID:             packageID,
					Price:          3000,
					EarlyBirdPrice: &earlyBird,
				},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages/7/price", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewPricingHandler(svc)
	err := h.GetPackagePrice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PackagePriceResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.PackageID)
	assert.Equal(t, 2400.0, resp.CurrentPrice)
	assert.Equal(t, models.PriceEarlyBird, resp.PriceType)
	assert.Equal(t, 3000.0, resp.RegularPrice)
}

func TestGetPackagePrice_Handler_NotFound(t *testing.T) {
	svc := &mockPricingService{
		packageFn: func(ctx context.Context, packageID uint) (*service.PackagePrice, error) {
			return nil, service.ErrPackageNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages/999/price", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewPricingHandler(svc)
	err := h.GetPackagePrice(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
