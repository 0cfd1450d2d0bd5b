package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greengirl/dashboard/internal/api/handler"
)

func ok(context.Context) error { return nil }

func TestHealthHandler_Healthy(t *testing.T) {
	h := handler.NewHealthHandler(handler.PingFunc(ok), handler.PingFunc(ok), "0.1.0")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "0.1.0", data["version"])
	assert.Equal(t, true, data["database"].(map[string]interface{})["connected"])
	assert.Equal(t, true, data["redis"].(map[string]interface{})["connected"])
}

func TestHealthHandler_Degraded(t *testing.T) {
	down := handler.PingFunc(func(context.Context) error { return errors.New("connection refused") })
	h := handler.NewHealthHandler(handler.PingFunc(ok), down, "0.1.0")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
	redis := data["redis"].(map[string]interface{})
	assert.Equal(t, false, redis["connected"])
	assert.Equal(t, "connection refused", redis["error"])
}

func TestHealthHandler_NilPinger(t *testing.T) {
	h := handler.NewHealthHandler(nil, handler.PingFunc(ok), "dev")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
