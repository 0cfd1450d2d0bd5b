package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles sign in, sign out and session inspection.
type AuthHandler struct {
	auth    Authenticator
	clients SessionClients
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(a Authenticator, clients SessionClients) *AuthHandler {
	return &AuthHandler{auth: a, clients: clients}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}

	var errs []validation.FieldError
	if req.Email == "" {
		errs = append(errs, validation.FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errs = append(errs, validation.FieldError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	contextID := middleware.GetContextID(r.Context())
	user, err := h.auth.Login(r.Context(), h.clients(contextID), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.Err(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error(), requestID)
		case errors.Is(err, gateway.ErrProfileResolution):
			response.Err(w, http.StatusInternalServerError, "PROFILE_RESOLUTION_FAILED", err.Error(), requestID)
		default:
			slog.Error("sign in failed", "context", contextID, "error", err)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in", requestID)
		}
		return
	}

	s := middleware.GetSession(r.Context())
	if s.User == nil {
		s.User, s.IsAuthenticated, s.Loading = user, true, false
	}
	response.Success(w, http.StatusOK, toSessionResponse(s), requestID)
}

// Logout handles POST /auth/logout. A failed sign-out keeps the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	p := middleware.GetProvider(r.Context())
	if p == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Sign in required", requestID)
		return
	}

	if err := p.Logout(r.Context()); err != nil {
		slog.Error("sign out failed", "context", middleware.GetContextID(r.Context()), "error", err)
		response.Err(w, http.StatusBadGateway, "SIGN_OUT_FAILED", "Failed to sign out", requestID)
		return
	}

	response.Success(w, http.StatusOK, toSessionResponse(p.Current()), requestID)
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response.Success(w, http.StatusOK, toSessionResponse(middleware.GetSession(r.Context())), requestID)
}
