package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/profile"
)

func TestUpdateUserRole_RejectsSelf(t *testing.T) {
	self := uuid.New()
	g := gateway.New(gateway.Deps{Profiles: &mockProfileRepo{
		updateRoleFn: func(context.Context, uuid.UUID, profile.Role) (*profile.User, error) {
			t.Fatal("no write may happen for a self role change")
			return nil, nil
		},
	}})

	_, err := g.UpdateUserRole(context.Background(), self, self, profile.RoleUser)

	assert.ErrorIs(t, err, gateway.ErrSelfModification)
}

func TestUpdateUserRole(t *testing.T) {
	target := uuid.New()
	var metadataRole string
	notifier := &recordingNotifier{}
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			updateRoleFn: func(_ context.Context, id uuid.UUID, role string) error {
				assert.Equal(t, target, id)
				metadataRole = role
				return nil
			},
		},
		Profiles: &mockProfileRepo{
			updateRoleFn: func(_ context.Context, id uuid.UUID, role profile.Role) (*profile.User, error) {
				return &profile.User{ID: id, Role: role}, nil
			},
		},
		Sessions: notifier,
	})

	u, err := g.UpdateUserRole(context.Background(), uuid.New(), target, profile.RoleSuperUser)

	require.NoError(t, err)
	assert.Equal(t, profile.RoleSuperUser, u.Role)
	assert.Equal(t, "super-user", metadataRole)
	assert.Equal(t, []uuid.UUID{target}, notifier.refreshed)
}

func TestUpdateUserRole_MetadataFailure(t *testing.T) {
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			updateRoleFn: func(context.Context, uuid.UUID, string) error {
				return errors.New("connection reset")
			},
		},
		Profiles: &mockProfileRepo{
			updateRoleFn: func(_ context.Context, id uuid.UUID, role profile.Role) (*profile.User, error) {
				return &profile.User{ID: id, Role: role}, nil
			},
		},
	})

	_, err := g.UpdateUserRole(context.Background(), uuid.New(), uuid.New(), profile.RoleUser)

	var writeErr *gateway.RemoteWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "update role", writeErr.Op)
}

func TestDeleteUser_RejectsSelf(t *testing.T) {
	self := uuid.New()
	g := gateway.New(gateway.Deps{Profiles: &mockProfileRepo{
		deleteFn: func(context.Context, uuid.UUID) error {
			t.Fatal("no write may happen for a self delete")
			return nil
		},
	}})

	assert.ErrorIs(t, g.DeleteUser(context.Background(), self, self), gateway.ErrSelfModification)
}

func TestDeleteUser(t *testing.T) {
	target := uuid.New()
	var metadataRole string
	notifier := &recordingNotifier{}
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			updateRoleFn: func(_ context.Context, _ uuid.UUID, role string) error {
				metadataRole = role
				return nil
			},
		},
		Profiles: &mockProfileRepo{
			deleteFn: func(context.Context, uuid.UUID) error { return nil },
		},
		Sessions: notifier,
	})

	require.NoError(t, g.DeleteUser(context.Background(), uuid.New(), target))

	assert.Equal(t, "user", metadataRole)
	assert.Equal(t, []uuid.UUID{target}, notifier.revoked)
}

func TestDeleteUser_NotFoundTouchesNothing(t *testing.T) {
	notifier := &recordingNotifier{}
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			updateRoleFn: func(context.Context, uuid.UUID, string) error {
				t.Fatal("identity must not change when no profile was deleted")
				return nil
			},
		},
		Profiles: &mockProfileRepo{
			deleteFn: func(context.Context, uuid.UUID) error { return profile.ErrNotFound },
		},
		Sessions: notifier,
	})

	err := g.DeleteUser(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, profile.ErrNotFound)
	assert.Empty(t, notifier.revoked)
}

// TestDemotedUserReturnsAsRegularUser walks a super-user through demotion,
// deletion and a later sign-in that re-creates the profile.
func TestDemotedUserReturnsAsRegularUser(t *testing.T) {
	ctx := context.Background()
	identities := map[uuid.UUID]*auth.Identity{}
	profiles := map[uuid.UUID]profile.User{}

	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			signUpFn: func(_ context.Context, email, _ string, meta auth.Metadata) (*auth.Identity, error) {
				identity := &auth.Identity{ID: uuid.New(), Email: email, Metadata: meta}
				identities[identity.ID] = identity
				return identity, nil
			},
			updateRoleFn: func(_ context.Context, id uuid.UUID, role string) error {
				identities[id].Metadata.Role = role
				return nil
			},
		},
		Profiles: &mockProfileRepo{
			getByIDFn: func(_ context.Context, id uuid.UUID) (*profile.User, error) {
				u, ok := profiles[id]
				if !ok {
					return nil, profile.ErrNotFound
				}
				return &u, nil
			},
			createFn: func(_ context.Context, u *profile.User) error {
				profiles[u.ID] = *u
				return nil
			},
			updateRoleFn: func(_ context.Context, id uuid.UUID, role profile.Role) (*profile.User, error) {
				u := profiles[id]
				u.Role = role
				profiles[id] = u
				return &u, nil
			},
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				delete(profiles, id)
				return nil
			},
		},
	})
	admin := uuid.New()

	created, err := g.AddUser(ctx, gateway.NewUser{
		Name: "Bia", Email: "bia@example.com", Password: "123456", Role: profile.RoleSuperUser,
	})
	require.NoError(t, err)
	_, err = g.UpdateUserRole(ctx, admin, created.ID, profile.RoleUser)
	require.NoError(t, err)
	require.NoError(t, g.DeleteUser(ctx, admin, created.ID))

	u, err := g.ResolveProfile(ctx, identities[created.ID])

	require.NoError(t, err)
	assert.Equal(t, profile.RoleUser, u.Role)
}

func TestDeletedSuperUserReturnsAsRegularUser(t *testing.T) {
	id := uuid.New()
	identity := &auth.Identity{ID: id, Email: "bia@example.com", Metadata: auth.Metadata{Name: "Bia", Role: "super-user"}}
	var inserted *profile.User
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			updateRoleFn: func(_ context.Context, _ uuid.UUID, role string) error {
				identity.Metadata.Role = role
				return nil
			},
		},
		Profiles: &mockProfileRepo{
			deleteFn: func(context.Context, uuid.UUID) error { return nil },
			getByIDFn: func(context.Context, uuid.UUID) (*profile.User, error) {
				return nil, profile.ErrNotFound
			},
			createFn: func(_ context.Context, u *profile.User) error {
				inserted = u
				return nil
			},
		},
	})

	require.NoError(t, g.DeleteUser(context.Background(), uuid.New(), id))
	_, err := g.ResolveProfile(context.Background(), identity)

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, profile.RoleUser, inserted.Role)
}

func TestAddUser(t *testing.T) {
	id := uuid.New()
	var created *profile.User
	g := gateway.New(gateway.Deps{
		Auth: &mockAuth{
			signUpFn: func(_ context.Context, email, _ string, meta auth.Metadata) (*auth.Identity, error) {
				return &auth.Identity{ID: id, Email: email, Metadata: meta}, nil
			},
		},
		Profiles: &mockProfileRepo{
			createFn: func(_ context.Context, u *profile.User) error {
				created = u
				return nil
			},
		},
	})

	u, err := g.AddUser(context.Background(), gateway.NewUser{
		Name: "Bia", Email: "bia@example.com", Password: "123456", Role: profile.RoleSuperUser,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Bia", u.Name)
	assert.Equal(t, profile.RoleSuperUser, u.Role)
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	g := gateway.New(gateway.Deps{Auth: &mockAuth{
		signUpFn: func(context.Context, string, string, auth.Metadata) (*auth.Identity, error) {
			return nil, auth.ErrDuplicateEmail
		},
	}})

	_, err := g.AddUser(context.Background(), gateway.NewUser{Email: "dup@example.com"})

	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
}
