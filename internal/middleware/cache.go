package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

type bodyCacheWriter struct {
	http.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from an in-memory store for the given duration.
// Only successful responses are stored.
func Cache(store *cache.Cache, duration time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := c.Request().RequestURI
			if v, found := store.Get(key); found {
				cached := v.(cachedResponse)
				h := c.Response().Header()
				for k, vals := range cached.header {
					h[k] = vals
				}
				c.Response().WriteHeader(cached.status)
				_, err := c.Response().Write(cached.body)
				return err
			}

			writer := &bodyCacheWriter{ResponseWriter: c.Response().Writer, body: bytes.NewBuffer(nil)}
			c.Response().Writer = writer

			if err := next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status >= 200 && status < 300 {
				store.Set(key, cachedResponse{
					status: status,
					header: c.Response().Header().Clone(),
					body:   writer.body.Bytes(),
				}, duration)
			}
			return nil
		}
	}
}
