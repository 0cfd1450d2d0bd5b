package handler

import (
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session"
)

const (
	timestampLayout = "2006-01-02T15:04:05Z"
	dateLayout      = "2006-01-02"
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func toUserResponse(u *profile.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: formatTimestamp(u.CreatedAt),
	}
}

type sessionResponse struct {
	Loading         bool          `json:"loading"`
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *userResponse `json:"user"`
}

func toSessionResponse(s session.Session) sessionResponse {
	return sessionResponse{
		Loading:         s.Loading,
		IsAuthenticated: s.IsAuthenticated,
		User:            toUserResponse(s.User),
	}
}

type materialResponse struct {
	ID        string  `json:"id"`
	Project   string  `json:"project"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Usage     string  `json:"usage"`
	Date      string  `json:"date"`
	UserID    string  `json:"userId"`
	CreatedBy string  `json:"createdBy"`
	CreatedAt string  `json:"createdAt"`
}

func toMaterialResponse(m *material.WithAuthor) materialResponse {
	return materialResponse{
		ID:        m.ID.String(),
		Project:   m.Project,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Usage:     string(m.Usage),
		Date:      m.Date.Format(dateLayout),
		UserID:    m.UserID.String(),
		CreatedBy: m.CreatedBy,
		CreatedAt: formatTimestamp(m.CreatedAt),
	}
}

type activityResponse struct {
	ID           string `json:"id"`
	Project      string `json:"project"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Participants int    `json:"participants"`
	Date         string `json:"date"`
	UserID       string `json:"userId"`
	CreatedBy    string `json:"createdBy"`
	CreatedAt    string `json:"createdAt"`
}

func toActivityResponse(a *activity.WithAuthor) activityResponse {
	return activityResponse{
		ID:           a.ID.String(),
		Project:      a.Project,
		Type:         a.Type,
		Description:  a.Description,
		Participants: a.Participants,
		Date:         a.Date.Format(dateLayout),
		UserID:       a.UserID.String(),
		CreatedBy:    a.CreatedBy,
		CreatedAt:    formatTimestamp(a.CreatedAt),
	}
}
