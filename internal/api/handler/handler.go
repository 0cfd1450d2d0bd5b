package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any, requestID string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return false
	}
	return true
}

func validationFailed(w http.ResponseWriter, errs []validation.FieldError, requestID string) {
	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", errs, requestID)
}

func parseID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return uuid.Nil, false
	}
	return id, true
}

// confirmed reports whether a destructive request carries ?confirm=true and
// answers 428 when it does not.
func confirmed(w http.ResponseWriter, r *http.Request, requestID string) bool {
	if r.URL.Query().Get("confirm") == "true" {
		return true
	}
	response.Err(w, http.StatusPreconditionRequired, "CONFIRMATION_REQUIRED", "Repeat the request with confirm=true to proceed", requestID)
	return false
}

func isNotFound(err error) bool {
	return errors.Is(err, material.ErrNotFound) ||
		errors.Is(err, activity.ErrNotFound) ||
		errors.Is(err, profile.ErrNotFound)
}

// writeGatewayError maps gateway and store errors onto the envelope.
func writeGatewayError(w http.ResponseWriter, err error, action, requestID string) {
	var writeErr *gateway.RemoteWriteError
	switch {
	case isNotFound(err):
		response.Err(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", requestID)
	case errors.Is(err, gateway.ErrSelfModification):
		response.Err(w, http.StatusForbidden, "SELF_MODIFICATION", err.Error(), requestID)
	case errors.Is(err, auth.ErrDuplicateEmail):
		response.Err(w, http.StatusConflict, "DUPLICATE_EMAIL", "Email is already registered", requestID)
	case errors.As(err, &writeErr):
		slog.Error("remote write failed", "action", action, "error", err)
		response.Err(w, http.StatusBadGateway, "WRITE_FAILED", "Failed to "+action+": "+writeErr.Err.Error(), requestID)
	default:
		slog.Error("request failed", "action", action, "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to "+action, requestID)
	}
}
