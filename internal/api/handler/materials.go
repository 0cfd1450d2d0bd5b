package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/export"
	"github.com/greengirl/dashboard/internal/listing"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
)

var materialColumns = listing.Columns[material.WithAuthor]{
	"date":      func(m material.WithAuthor) any { return m.Date },
	"project":   func(m material.WithAuthor) any { return m.Project },
	"type":      func(m material.WithAuthor) any { return string(m.Type) },
	"quantity":  func(m material.WithAuthor) any { return m.Quantity },
	"usage":     func(m material.WithAuthor) any { return string(m.Usage) },
	"createdBy": func(m material.WithAuthor) any { return m.CreatedBy },
}

var newestFirst = listing.SortState{Key: "date", Direction: listing.Descending}

func sortKeys[T any](cols listing.Columns[T]) []string {
	keys := make([]string, 0, len(cols))
	for k := range cols {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// canModify reports whether u may change a record owned by owner.
func canModify(u *profile.User, owner uuid.UUID) bool {
	return u.IsSuperUser() || (u != nil && u.ID == owner)
}

func forbiddenRecord(w http.ResponseWriter, requestID string) {
	response.Err(w, http.StatusForbidden, "FORBIDDEN", "Only the owner or a super-user may change this record", requestID)
}

type createMaterialRequest struct {
	Project  string   `json:"project"`
	Type     string   `json:"type"`
	Quantity *float64 `json:"quantity"`
	Usage    string   `json:"usage"`
	Date     string   `json:"date"`
}

type updateMaterialRequest struct {
	Project  *string  `json:"project"`
	Type     *string  `json:"type"`
	Quantity *float64 `json:"quantity"`
	Usage    *string  `json:"usage"`
}

// MaterialHandler handles material record endpoints.
type MaterialHandler struct {
	store    MaterialStore
	lookups  LookupStore
	pageSize int
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(store MaterialStore, lookups LookupStore, pageSize int) *MaterialHandler {
	return &MaterialHandler{store: store, lookups: lookups, pageSize: pageSize}
}

// view loads every material into a list view configured from the query.
func (h *MaterialHandler) view(w http.ResponseWriter, r *http.Request, requestID string) (*listing.View[material.WithAuthor], bool) {
	lq, errs := validation.ParseListQuery(r.URL.Query(), sortKeys(materialColumns))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return nil, false
	}

	v := listing.NewView(materialColumns, newestFirst, h.pageSize)
	v.SetRecords(h.store.ListMaterials(r.Context()))
	v.SetCriteria(lq.Criteria)
	if lq.Sort.Key != "" {
		v.SetSort(lq.Sort)
	}
	v.GoTo(lq.Page)
	return v, true
}

// List handles GET /materials.
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v, ok := h.view(w, r, requestID)
	if !ok {
		return
	}

	page := v.Page()
	items := make([]materialResponse, 0, len(page))
	for i := range page {
		items = append(items, toMaterialResponse(&page[i]))
	}

	response.SuccessPage(w, http.StatusOK, items, v.Pager(), requestID)
}

// Export handles GET /materials/export.csv. Every filtered row is exported
// in the current sort order, regardless of page.
func (h *MaterialHandler) Export(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v, ok := h.view(w, r, requestID)
	if !ok {
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", "materiais_"+time.Now().Format(dateLayout)+".csv")
	if err := export.WriteCSV(w, v.Items(), export.MaterialColumns); err != nil {
		slog.Error("failed to write materials export", "error", err)
	}
}

// Create handles POST /materials.
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	var req createMaterialRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}

	errs := validation.ValidateMaterial(validation.MaterialRequest{
		Project:  req.Project,
		Type:     req.Type,
		Quantity: req.Quantity,
		Usage:    req.Usage,
		Date:     req.Date,
	}, h.lookups.Projects(r.Context()))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	m := &material.Material{
		Project:  req.Project,
		Type:     material.Type(req.Type),
		Quantity: *req.Quantity,
		Usage:    material.Usage(req.Usage),
		UserID:   user.ID,
	}
	if req.Date != "" {
		m.Date, _ = validation.ParseDate(req.Date)
	}

	created, err := h.store.CreateMaterial(r.Context(), m)
	if err != nil {
		writeGatewayError(w, err, "create material", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toMaterialResponse(created), requestID)
}

// authorize fetches the record and checks the caller may change it.
func (h *MaterialHandler) authorize(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, ok := parseID(w, r, requestID)
	if !ok {
		return uuid.Nil, false
	}

	existing, err := h.store.GetMaterial(r.Context(), id)
	if err != nil {
		writeGatewayError(w, err, "load material", requestID)
		return uuid.Nil, false
	}
	if !canModify(middleware.GetUser(r.Context()), existing.UserID) {
		forbiddenRecord(w, requestID)
		return uuid.Nil, false
	}
	return id, true
}

// Update handles PATCH /materials/{id}.
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	var req updateMaterialRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}

	errs := validation.ValidateMaterialPatch(validation.MaterialPatch{
		Project:  req.Project,
		Type:     req.Type,
		Quantity: req.Quantity,
		Usage:    req.Usage,
	}, h.lookups.Projects(r.Context()))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	fields := material.UpdateFields{Project: req.Project, Quantity: req.Quantity}
	if req.Type != nil {
		t := material.Type(*req.Type)
		fields.Type = &t
	}
	if req.Usage != nil {
		u := material.Usage(*req.Usage)
		fields.Usage = &u
	}

	updated, err := h.store.UpdateMaterial(r.Context(), id, fields)
	if err != nil {
		writeGatewayError(w, err, "update material", requestID)
		return
	}

	response.Success(w, http.StatusOK, toMaterialResponse(updated), requestID)
}

// Delete handles DELETE /materials/{id}?confirm=true.
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}
	if !confirmed(w, r, requestID) {
		return
	}

	if err := h.store.DeleteMaterial(r.Context(), id); err != nil {
		writeGatewayError(w, err, "delete material", requestID)
		return
	}

	response.NoContent(w)
}
