package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

// LookupHandler serves reference lists and the storage gauges.
type LookupHandler struct {
	lookups   LookupStore
	materials MaterialStore
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookups LookupStore, materials MaterialStore) *LookupHandler {
	return &LookupHandler{lookups: lookups, materials: materials}
}

// Projects handles GET /lookups/projects.
func (h *LookupHandler) Projects(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	items := h.lookups.Projects(r.Context())
	response.SuccessList(w, http.StatusOK, items, len(items), 1, max(len(items), 1), requestID)
}

// ActivityTypes handles GET /lookups/activity-types.
func (h *LookupHandler) ActivityTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	items := h.lookups.ActivityTypes(r.Context())
	response.SuccessList(w, http.StatusOK, items, len(items), 1, max(len(items), 1), requestID)
}

// Storage handles GET /storage.
func (h *LookupHandler) Storage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	gauges := report.Gauges(h.materials.ListMaterials(r.Context()), h.lookups.StorageConfig(r.Context()))
	response.Success(w, http.StatusOK, gauges, requestID)
}

type updateCapacityRequest struct {
	Capacity *float64 `json:"capacity"`
}

// UpdateCapacity handles PUT /storage/{type}. On success the gauge of that
// type is recomputed from current totals; on failure nothing changes.
func (h *LookupHandler) UpdateCapacity(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	typ := chi.URLParam(r, "type")

	var req updateCapacityRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	if errs := validation.ValidateCapacity(typ, req.Capacity); len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	mt := material.Type(typ)
	if err := h.lookups.UpdateCapacity(r.Context(), mt, *req.Capacity); err != nil {
		writeGatewayError(w, err, "update capacity", requestID)
		return
	}

	for _, g := range report.Gauges(h.materials.ListMaterials(r.Context()), h.lookups.StorageConfig(r.Context())) {
		if g.Type == mt {
			response.Success(w, http.StatusOK, g, requestID)
			return
		}
	}
	response.NoContent(w)
}
