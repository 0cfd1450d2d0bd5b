package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/export"
	"github.com/greengirl/dashboard/internal/listing"
)

var activityColumns = listing.Columns[activity.WithAuthor]{
	"date":         func(a activity.WithAuthor) any { return a.Date },
	"project":      func(a activity.WithAuthor) any { return a.Project },
	"type":         func(a activity.WithAuthor) any { return a.Type },
	"description":  func(a activity.WithAuthor) any { return a.Description },
	"participants": func(a activity.WithAuthor) any { return a.Participants },
	"createdBy":    func(a activity.WithAuthor) any { return a.CreatedBy },
}

type createActivityRequest struct {
	Project      string `json:"project"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Participants *int   `json:"participants"`
	Date         string `json:"date"`
}

type updateActivityRequest struct {
	Project      *string `json:"project"`
	Type         *string `json:"type"`
	Description  *string `json:"description"`
	Participants *int    `json:"participants"`
}

// ActivityHandler handles activity record endpoints.
type ActivityHandler struct {
	store    ActivityStore
	lookups  LookupStore
	pageSize int
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(store ActivityStore, lookups LookupStore, pageSize int) *ActivityHandler {
	return &ActivityHandler{store: store, lookups: lookups, pageSize: pageSize}
}

func (h *ActivityHandler) view(w http.ResponseWriter, r *http.Request, requestID string) (*listing.View[activity.WithAuthor], bool) {
	lq, errs := validation.ParseListQuery(r.URL.Query(), sortKeys(activityColumns))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return nil, false
	}

	v := listing.NewView(activityColumns, newestFirst, h.pageSize)
	v.SetRecords(h.store.ListActivities(r.Context()))
	v.SetCriteria(lq.Criteria)
	if lq.Sort.Key != "" {
		v.SetSort(lq.Sort)
	}
	v.GoTo(lq.Page)
	return v, true
}

// List handles GET /activities.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v, ok := h.view(w, r, requestID)
	if !ok {
		return
	}

	page := v.Page()
	items := make([]activityResponse, 0, len(page))
	for i := range page {
		items = append(items, toActivityResponse(&page[i]))
	}

	response.SuccessPage(w, http.StatusOK, items, v.Pager(), requestID)
}

// Export handles GET /activities/export.csv.
func (h *ActivityHandler) Export(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v, ok := h.view(w, r, requestID)
	if !ok {
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", "atividades_"+time.Now().Format(dateLayout)+".csv")
	if err := export.WriteCSV(w, v.Items(), export.ActivityColumns); err != nil {
		slog.Error("failed to write activities export", "error", err)
	}
}

// Create handles POST /activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	var req createActivityRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}

	errs := validation.ValidateActivity(validation.ActivityRequest{
		Project:      req.Project,
		Type:         req.Type,
		Description:  req.Description,
		Participants: req.Participants,
		Date:         req.Date,
	}, h.lookups.Projects(r.Context()), h.lookups.ActivityTypes(r.Context()))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	a := &activity.Activity{
		Project:      req.Project,
		Type:         req.Type,
		Description:  req.Description,
		Participants: *req.Participants,
		UserID:       user.ID,
	}
	if req.Date != "" {
		a.Date, _ = validation.ParseDate(req.Date)
	}

	created, err := h.store.CreateActivity(r.Context(), a)
	if err != nil {
		writeGatewayError(w, err, "create activity", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toActivityResponse(created), requestID)
}

func (h *ActivityHandler) authorize(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, ok := parseID(w, r, requestID)
	if !ok {
		return uuid.Nil, false
	}

	existing, err := h.store.GetActivity(r.Context(), id)
	if err != nil {
		writeGatewayError(w, err, "load activity", requestID)
		return uuid.Nil, false
	}
	if !canModify(middleware.GetUser(r.Context()), existing.UserID) {
		forbiddenRecord(w, requestID)
		return uuid.Nil, false
	}
	return id, true
}

// Update handles PATCH /activities/{id}.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	var req updateActivityRequest
	if !decodeJSON(w, r, &req, requestID) {
		return
	}

	errs := validation.ValidateActivityPatch(validation.ActivityPatch{
		Project:      req.Project,
		Type:         req.Type,
		Description:  req.Description,
		Participants: req.Participants,
	}, h.lookups.Projects(r.Context()), h.lookups.ActivityTypes(r.Context()))
	if len(errs) > 0 {
		validationFailed(w, errs, requestID)
		return
	}

	updated, err := h.store.UpdateActivity(r.Context(), id, activity.UpdateFields{
		Project:      req.Project,
		Type:         req.Type,
		Description:  req.Description,
		Participants: req.Participants,
	})
	if err != nil {
		writeGatewayError(w, err, "update activity", requestID)
		return
	}

	response.Success(w, http.StatusOK, toActivityResponse(updated), requestID)
}

// Delete handles DELETE /activities/{id}?confirm=true.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}
	if !confirmed(w, r, requestID) {
		return
	}

	if err := h.store.DeleteActivity(r.Context(), id); err != nil {
		writeGatewayError(w, err, "delete activity", requestID)
		return
	}

	response.NoContent(w)
}
