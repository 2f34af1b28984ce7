package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestCache_ServesRepeatGetFromStore(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	calls := 0

	e := echo.New()
	e.GET("/price", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]int{"calls": calls})
	}, Cache(store, time.Minute))

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/price", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/price", nil))

	assert.Equal(t, 1, calls, "second request must not reach the handler")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCache_SkipsNonGetRequests(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	calls := 0

	e := echo.New()
	e.POST("/calculate", func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	}, Cache(store, time.Minute))

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calculate", nil))
	}

	assert.Equal(t, 2, calls)
}

func TestCache_DoesNotStoreErrors(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	calls := 0

	e := echo.New()
	e.GET("/missing", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusNotFound, map[string]string{"message": "not found"})
	}, Cache(store, time.Minute))

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	}

	assert.Equal(t, 2, calls, "error responses are recomputed every time")
}
