package handler

import (
	"net/http"
	"strings"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/profile"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// UserHandler handles user administration endpoints.
type UserHandler struct {
	users UserAdmin
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserAdmin) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	users := h.users.ListUsers(r.Context())
	items := make([]*userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), 1, max(len(items), 1), requestID)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req createUserRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	if req.Role == "" {
		req.Role = string(profile.RoleUser)
	}

	errs := validation.ValidateCreateUserRequest(validation.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	u, err := h.users.AddUser(r.Context(), gateway.NewUser{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     profile.Role(req.Role),
	})
	if err != nil {
		writeGatewayError(w, err, "create user", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toUserResponse(u), requestID)
}

// UpdateRole handles PATCH /users/{id}/role.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor := middleware.GetUser(r.Context())

	id, ok := parseID(w, r, requestID)
	if !ok {
		return
	}

	var req updateRoleRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	if errs := validation.ValidateRole(req.Role); len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	u, err := h.users.UpdateUserRole(r.Context(), actor.ID, id, profile.Role(req.Role))
	if err != nil {
		writeGatewayError(w, err, "update role", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(u), requestID)
}

// Delete handles DELETE /users/{id}?confirm=true.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor := middleware.GetUser(r.Context())

	id, ok := parseID(w, r, requestID)
	if !ok {
		return
	}
	if actor.ID == id {
		writeGatewayError(w, gateway.ErrSelfModification, "delete user", requestID)
		return
	}
	if !confirmed(w, r, requestID) {
		return
	}

	if err := h.users.DeleteUser(r.Context(), actor.ID, id); err != nil {
		writeGatewayError(w, err, "delete user", requestID)
		return
	}

	response.NoContent(w)
}
