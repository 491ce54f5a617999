package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dispatchkit/core/dispatch"
	"github.com/dmitrymomot/dispatchkit/core/handler"
	"github.com/dmitrymomot/dispatchkit/middleware"
)

func TestClientIPStoresInContext(t *testing.T) {
	t.Parallel()

	var capturedIP string
	h := endpoint(t, probe(func(ctx handler.Context) (map[string]string, error) {
		ip, ok := middleware.GetClientIP(ctx)
		assert.True(t, ok, "client IP should be present in context")
		capturedIP = ip
		return map[string]string{"status": "ok"}, nil
	}), dispatch.WithMiddleware(middleware.ClientIP()))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.10, 10.0.0.1")
	get(h, req)

	assert.Equal(t, "203.0.113.10", capturedIP)
}

func TestClientIPStoresInHeader(t *testing.T) {
	t.Parallel()

	h := endpoint(t, probe(func(ctx handler.Context) (map[string]string, error) {
		return map[string]string{"status": "ok"}, nil
	}), dispatch.WithMiddleware(middleware.ClientIPWithConfig(middleware.ClientIPConfig{
		StoreInHeader: true,
	})))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Real-IP", "198.51.100.7")
	w := get(h, req)

	assert.Equal(t, "198.51.100.7", w.Header().Get("X-Client-IP"))
}

func TestClientIPValidation(t *testing.T) {
	t.Parallel()

	handlerCalled := false
	h := endpoint(t, probe(func(ctx handler.Context) (map[string]string, error) {
		handlerCalled = true
		return map[string]string{"status": "ok"}, nil
	}), dispatch.WithMiddleware(middleware.ClientIPWithConfig(middleware.ClientIPConfig{
		ValidateFunc: func(ctx *dispatch.Context, ip string) error {
			return errors.New("blocked")
		},
	})))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Real-IP", "198.51.100.7")
	w := get(h, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled, "handler should not run for blocked IPs")
}

func TestClientIPSkip(t *testing.T) {
	t.Parallel()

	h := endpoint(t, probe(func(ctx handler.Context) (map[string]string, error) {
		_, ok := middleware.GetClientIP(ctx)
		assert.False(t, ok, "client IP should not be stored when skipped")
		return map[string]string{"status": "ok"}, nil
	}), dispatch.WithMiddleware(middleware.ClientIPWithConfig(middleware.ClientIPConfig{
		StoreInContext: true,
		Skip:           func(ctx *dispatch.Context) bool { return true },
	})))

	w := get(h, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
