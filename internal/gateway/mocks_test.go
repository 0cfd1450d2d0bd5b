package gateway_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
)

type mockAuth struct {
	signInFn            func(ctx context.Context, email, password string) (*auth.Identity, string, error)
	signOutFn           func(ctx context.Context, token string) error
	verifyFn            func(ctx context.Context, token string) (*auth.Identity, error)
	signUpFn            func(ctx context.Context, email, password string, meta auth.Metadata) (*auth.Identity, error)
	updateCredentialsFn func(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error)
	updateRoleFn        func(ctx context.Context, id uuid.UUID, role string) error
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*auth.Identity, string, error) {
	return m.signInFn(ctx, email, password)
}

func (m *mockAuth) SignOut(ctx context.Context, token string) error {
	if m.signOutFn == nil {
		return nil
	}
	return m.signOutFn(ctx, token)
}

func (m *mockAuth) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	return m.verifyFn(ctx, token)
}

func (m *mockAuth) SignUp(ctx context.Context, email, password string, meta auth.Metadata) (*auth.Identity, error) {
	return m.signUpFn(ctx, email, password, meta)
}

func (m *mockAuth) UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error) {
	return m.updateCredentialsFn(ctx, id, email, password)
}

func (m *mockAuth) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if m.updateRoleFn == nil {
		return nil
	}
	return m.updateRoleFn(ctx, id, role)
}

// recordingNotifier remembers which identities had their sessions refreshed
// or revoked.
type recordingNotifier struct {
	refreshed []uuid.UUID
	revoked   []uuid.UUID
}

func (n *recordingNotifier) RefreshIdentity(_ context.Context, id uuid.UUID) {
	n.refreshed = append(n.refreshed, id)
}

func (n *recordingNotifier) RevokeIdentity(_ context.Context, id uuid.UUID) {
	n.revoked = append(n.revoked, id)
}

type mockProfileRepo struct {
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*profile.User, error)
	createFn      func(ctx context.Context, u *profile.User) error
	listFn        func(ctx context.Context) ([]profile.User, error)
	updateNameFn  func(ctx context.Context, id uuid.UUID, name string) (*profile.User, error)
	updateEmailFn func(ctx context.Context, id uuid.UUID, email string) error
	updateRoleFn  func(ctx context.Context, id uuid.UUID, role profile.Role) (*profile.User, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profile.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockProfileRepo) Create(ctx context.Context, u *profile.User) error {
	return m.createFn(ctx, u)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]profile.User, error) {
	return m.listFn(ctx)
}

func (m *mockProfileRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*profile.User, error) {
	return m.updateNameFn(ctx, id, name)
}

func (m *mockProfileRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	if m.updateEmailFn == nil {
		return nil
	}
	return m.updateEmailFn(ctx, id, email)
}

func (m *mockProfileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role profile.Role) (*profile.User, error) {
	return m.updateRoleFn(ctx, id, role)
}

func (m *mockProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockMaterialRepo struct {
	listFn    func(ctx context.Context) ([]material.WithAuthor, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error)
	createFn  func(ctx context.Context, m *material.Material) (*material.WithAuthor, error)
	updateFn  func(ctx context.Context, id uuid.UUID, f material.UpdateFields) (*material.WithAuthor, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMaterialRepo) List(ctx context.Context) ([]material.WithAuthor, error) {
	return m.listFn(ctx)
}

func (m *mockMaterialRepo) GetByID(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockMaterialRepo) Create(ctx context.Context, mat *material.Material) (*material.WithAuthor, error) {
	return m.createFn(ctx, mat)
}

func (m *mockMaterialRepo) Update(ctx context.Context, id uuid.UUID, f material.UpdateFields) (*material.WithAuthor, error) {
	return m.updateFn(ctx, id, f)
}

func (m *mockMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockActivityRepo struct {
	listFn   func(ctx context.Context) ([]activity.WithAuthor, error)
	createFn func(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error)
}

func (m *mockActivityRepo) List(ctx context.Context) ([]activity.WithAuthor, error) {
	return m.listFn(ctx)
}

func (m *mockActivityRepo) GetByID(context.Context, uuid.UUID) (*activity.WithAuthor, error) {
	return nil, activity.ErrNotFound
}

func (m *mockActivityRepo) Create(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error) {
	return m.createFn(ctx, a)
}

func (m *mockActivityRepo) Update(context.Context, uuid.UUID, activity.UpdateFields) (*activity.WithAuthor, error) {
	return nil, activity.ErrNotFound
}

func (m *mockActivityRepo) Delete(context.Context, uuid.UUID) error {
	return activity.ErrNotFound
}

type mockLookupRepo struct {
	projectsFn   func(ctx context.Context) ([]string, error)
	capacitiesFn func(ctx context.Context) (map[material.Type]float64, error)
	upsertFn     func(ctx context.Context, typ material.Type, capacity float64) error
}

func (m *mockLookupRepo) Projects(ctx context.Context) ([]string, error) {
	return m.projectsFn(ctx)
}

func (m *mockLookupRepo) ActivityTypes(context.Context) ([]string, error) {
	return []string{"Oficina"}, nil
}

func (m *mockLookupRepo) AddProjects(context.Context, []string) error      { return nil }
func (m *mockLookupRepo) AddActivityTypes(context.Context, []string) error { return nil }

func (m *mockLookupRepo) Capacities(ctx context.Context) (map[material.Type]float64, error) {
	return m.capacitiesFn(ctx)
}

func (m *mockLookupRepo) UpsertCapacity(ctx context.Context, typ material.Type, capacity float64) error {
	return m.upsertFn(ctx, typ, capacity)
}
