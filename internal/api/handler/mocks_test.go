package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session/sessiontest"
)

// --- Mock Authenticator ---

type mockAuthenticator struct {
	loginFn func(ctx context.Context, client gateway.SessionClient, email, password string) (*profile.User, error)
}

func (m *mockAuthenticator) Login(ctx context.Context, client gateway.SessionClient, email, password string) (*profile.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, client, email, password)
	}
	return nil, auth.ErrInvalidCredentials
}

type nopSessionClient struct{}

func (nopSessionClient) SignIn(context.Context, string, string) (*auth.Identity, error) {
	return nil, nil
}
func (nopSessionClient) SignOut(context.Context) error { return nil }

// --- Mock Profile Service ---

type mockProfileService struct {
	updateNameFn        func(ctx context.Context, id uuid.UUID, name string) (*profile.User, error)
	updateCredentialsFn func(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error)
}

func (m *mockProfileService) UpdateProfileName(ctx context.Context, id uuid.UUID, name string) (*profile.User, error) {
	if m.updateNameFn != nil {
		return m.updateNameFn(ctx, id, name)
	}
	return &profile.User{ID: id, Name: name, Role: profile.RoleUser}, nil
}

func (m *mockProfileService) UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error) {
	if m.updateCredentialsFn != nil {
		return m.updateCredentialsFn(ctx, id, email, password)
	}
	return &auth.Identity{ID: id, Email: email}, nil
}

// --- Mock User Admin ---

type mockUserAdmin struct {
	listFn       func(ctx context.Context) []profile.User
	addFn        func(ctx context.Context, nu gateway.NewUser) (*profile.User, error)
	updateRoleFn func(ctx context.Context, actorID, targetID uuid.UUID, role profile.Role) (*profile.User, error)
	deleteFn     func(ctx context.Context, actorID, targetID uuid.UUID) error
}

func (m *mockUserAdmin) ListUsers(ctx context.Context) []profile.User {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []profile.User{}
}

func (m *mockUserAdmin) AddUser(ctx context.Context, nu gateway.NewUser) (*profile.User, error) {
	if m.addFn != nil {
		return m.addFn(ctx, nu)
	}
	return &profile.User{ID: uuid.New(), Name: nu.Name, Email: nu.Email, Role: nu.Role}, nil
}

func (m *mockUserAdmin) UpdateUserRole(ctx context.Context, actorID, targetID uuid.UUID, role profile.Role) (*profile.User, error) {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, actorID, targetID, role)
	}
	return &profile.User{ID: targetID, Role: role}, nil
}

func (m *mockUserAdmin) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actorID, targetID)
	}
	return nil
}

// --- Mock Material Store ---

type mockMaterialStore struct {
	listFn   func(ctx context.Context) []material.WithAuthor
	getFn    func(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error)
	createFn func(ctx context.Context, m *material.Material) (*material.WithAuthor, error)
	updateFn func(ctx context.Context, id uuid.UUID, f material.UpdateFields) (*material.WithAuthor, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMaterialStore) ListMaterials(ctx context.Context) []material.WithAuthor {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []material.WithAuthor{}
}

func (m *mockMaterialStore) GetMaterial(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, material.ErrNotFound
}

func (m *mockMaterialStore) CreateMaterial(ctx context.Context, mat *material.Material) (*material.WithAuthor, error) {
	if m.createFn != nil {
		return m.createFn(ctx, mat)
	}
	created := *mat
	created.ID = uuid.New()
	created.Unit = mat.Type.Unit()
	created.CreatedAt = time.Now().UTC()
	return &material.WithAuthor{Material: created, CreatedBy: "Ana"}, nil
}

func (m *mockMaterialStore) UpdateMaterial(ctx context.Context, id uuid.UUID, f material.UpdateFields) (*material.WithAuthor, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return &material.WithAuthor{Material: material.Material{ID: id}}, nil
}

func (m *mockMaterialStore) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- Mock Activity Store ---

type mockActivityStore struct {
	listFn   func(ctx context.Context) []activity.WithAuthor
	getFn    func(ctx context.Context, id uuid.UUID) (*activity.WithAuthor, error)
	createFn func(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error)
	updateFn func(ctx context.Context, id uuid.UUID, f activity.UpdateFields) (*activity.WithAuthor, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityStore) ListActivities(ctx context.Context) []activity.WithAuthor {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []activity.WithAuthor{}
}

func (m *mockActivityStore) GetActivity(ctx context.Context, id uuid.UUID) (*activity.WithAuthor, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, activity.ErrNotFound
}

func (m *mockActivityStore) CreateActivity(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error) {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	created := *a
	created.ID = uuid.New()
	return &activity.WithAuthor{Activity: created, CreatedBy: "Ana"}, nil
}

func (m *mockActivityStore) UpdateActivity(ctx context.Context, id uuid.UUID, f activity.UpdateFields) (*activity.WithAuthor, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return &activity.WithAuthor{Activity: activity.Activity{ID: id}}, nil
}

func (m *mockActivityStore) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- Mock Lookup Store ---

type mockLookupStore struct {
	projects       []string
	activityTypes  []string
	capacities     map[material.Type]float64
	updateCapacity func(ctx context.Context, typ material.Type, capacity float64) error
}

func (m *mockLookupStore) Projects(context.Context) []string      { return m.projects }
func (m *mockLookupStore) ActivityTypes(context.Context) []string { return m.activityTypes }

func (m *mockLookupStore) StorageConfig(context.Context) map[material.Type]float64 {
	if m.capacities == nil {
		return map[material.Type]float64{material.Oil: 1000, material.Dry: 500, material.Organic: 200}
	}
	return m.capacities
}

func (m *mockLookupStore) UpdateCapacity(ctx context.Context, typ material.Type, capacity float64) error {
	if m.updateCapacity != nil {
		return m.updateCapacity(ctx, typ, capacity)
	}
	if m.capacities == nil {
		m.capacities = map[material.Type]float64{}
	}
	m.capacities[typ] = capacity
	return nil
}

// --- Helpers ---

func makeChiRequest(method, path string, body []byte, routePattern string, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

// asUser attaches a settled session for u (anonymous when nil) to req.
func asUser(req *http.Request, u *profile.User) *http.Request {
	p := sessiontest.Static(u)
	return req.WithContext(middleware.WithProvider(req.Context(), uuid.New().String(), p))
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseEnvelope(t, w)["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error")
	return errObj["code"].(string)
}

func regularUser() *profile.User {
	return &profile.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Role: profile.RoleUser}
}

func superUser() *profile.User {
	return &profile.User{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: profile.RoleSuperUser}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
