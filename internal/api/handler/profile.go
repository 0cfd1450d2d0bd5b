package handler

import (
	"net/http"
	"strings"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/profile"
)

type updateProfileRequest struct {
	Name string `json:"name"`
}

type updateCredentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileHandler serves the signed-in user's own profile.
type ProfileHandler struct {
	profiles ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response.Success(w, http.StatusOK, toUserResponse(middleware.GetUser(r.Context())), requestID)
}

// Update handles PATCH /profile. The session is patched in place so the new
// name shows without a refetch.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	var req updateProfileRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	if errs := validation.ValidateProfileName(req.Name); len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	name := strings.TrimSpace(req.Name)
	updated, err := h.profiles.UpdateProfileName(r.Context(), user.ID, name)
	if err != nil {
		writeGatewayError(w, err, "update profile", requestID)
		return
	}

	if p := middleware.GetProvider(r.Context()); p != nil {
		p.UpdateUserContext(profile.Patch{Name: &updated.Name})
	}
	response.Success(w, http.StatusOK, toUserResponse(updated), requestID)
}

// UpdateCredentials handles PATCH /profile/credentials.
func (h *ProfileHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	var req updateCredentialsRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == user.Email {
		req.Email = ""
	}

	errs := validation.ValidateCredentials(validation.CredentialsRequest{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	identity, err := h.profiles.UpdateCredentials(r.Context(), user.ID, req.Email, req.Password)
	if err != nil {
		writeGatewayError(w, err, "update credentials", requestID)
		return
	}

	updated := *user
	if req.Email != "" {
		updated.Email = identity.Email
		if p := middleware.GetProvider(r.Context()); p != nil {
			p.UpdateUserContext(profile.Patch{Email: &identity.Email})
		}
	}
	response.Success(w, http.StatusOK, toUserResponse(&updated), requestID)
}
