package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/itemshop/storefront/internal/api/middleware"
	"github.com/itemshop/storefront/internal/cart"
)

// NewRequest builds a request carrying a discard logger, the way the logging
// middleware would have prepared it.
func NewRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// NewRequestWithCart additionally seeds the cart cookie from its wire form,
// e.g. "7,7,9".
func NewRequestWithCart(method, target string, body io.Reader, cartValue string, pathParams map[string]string) *http.Request {
	req := NewRequest(method, target, body, pathParams)

	if cartValue != "" {
		req.AddCookie(&http.Cookie{Name: cart.CookieName, Value: cartValue})
	}

	return req
}

// NewJSONRequest wraps NewRequest for JSON bodies.
func NewJSONRequest(method, target, body string, pathParams map[string]string) *http.Request {
	req := NewRequest(method, target, strings.NewReader(body), pathParams)
	req.Header.Set("Content-Type", "application/json")

	return req
}
