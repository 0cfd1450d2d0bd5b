package handler

import (
	"net/http"
	"strconv"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/session"
)

// SidebarCookie persists the collapsed state of the sidebar per browser.
const SidebarCookie = "gg_sidebar"

const sidebarCookieMaxAge = 365 * 24 * 60 * 60

type sidebarPreference struct {
	Collapsed *bool `json:"collapsed"`
}

type navResponse struct {
	Items            []session.NavItem `json:"items"`
	SidebarCollapsed bool              `json:"sidebarCollapsed"`
}

// PreferencesHandler serves the sidebar navigation and its persisted state.
type PreferencesHandler struct {
	secureCookie bool
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(secureCookie bool) *PreferencesHandler {
	return &PreferencesHandler{secureCookie: secureCookie}
}

func sidebarCollapsed(r *http.Request) bool {
	c, err := r.Cookie(SidebarCookie)
	if err != nil {
		return false
	}
	collapsed, err := strconv.ParseBool(c.Value)
	return err == nil && collapsed
}

// Nav handles GET /nav.
func (h *PreferencesHandler) Nav(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	response.Success(w, http.StatusOK, navResponse{
		Items:            session.Navigation(middleware.GetUser(r.Context())),
		SidebarCollapsed: sidebarCollapsed(r),
	}, requestID)
}

// GetSidebar handles GET /preferences/sidebar.
func (h *PreferencesHandler) GetSidebar(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	collapsed := sidebarCollapsed(r)
	response.Success(w, http.StatusOK, sidebarPreference{Collapsed: &collapsed}, requestID)
}

// PutSidebar handles PUT /preferences/sidebar.
func (h *PreferencesHandler) PutSidebar(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req sidebarPreference
	if !decodeJSON(w, r, &req, requestID) {
		return
	}
	if req.Collapsed == nil {
		validationFailed(w, []validation.FieldError{{Field: "collapsed", Message: "collapsed is required"}}, requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SidebarCookie,
		Value:    strconv.FormatBool(*req.Collapsed),
		Path:     "/",
		MaxAge:   sidebarCookieMaxAge,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	response.Success(w, http.StatusOK, req, requestID)
}
