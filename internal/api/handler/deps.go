package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
)

// Authenticator signs a browsing context in and resolves its profile.
type Authenticator interface {
	Login(ctx context.Context, client gateway.SessionClient, email, password string) (*profile.User, error)
}

// SessionClients returns the auth client of a browsing context.
type SessionClients func(contextID string) gateway.SessionClient

// ProfileService updates the signed-in user's own profile.
type ProfileService interface {
	UpdateProfileName(ctx context.Context, id uuid.UUID, name string) (*profile.User, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error)
}

// UserAdmin manages other users.
type UserAdmin interface {
	ListUsers(ctx context.Context) []profile.User
	AddUser(ctx context.Context, nu gateway.NewUser) (*profile.User, error)
	UpdateUserRole(ctx context.Context, actorID, targetID uuid.UUID, role profile.Role) (*profile.User, error)
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
}

// MaterialStore reads and writes material records.
type MaterialStore interface {
	ListMaterials(ctx context.Context) []material.WithAuthor
	GetMaterial(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error)
	CreateMaterial(ctx context.Context, m *material.Material) (*material.WithAuthor, error)
	UpdateMaterial(ctx context.Context, id uuid.UUID, fields material.UpdateFields) (*material.WithAuthor, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
}

// ActivityStore reads and writes activity records.
type ActivityStore interface {
	ListActivities(ctx context.Context) []activity.WithAuthor
	GetActivity(ctx context.Context, id uuid.UUID) (*activity.WithAuthor, error)
	CreateActivity(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, fields activity.UpdateFields) (*activity.WithAuthor, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
}

// LookupStore serves the reference lists and storage capacities.
type LookupStore interface {
	Projects(ctx context.Context) []string
	ActivityTypes(ctx context.Context) []string
	StorageConfig(ctx context.Context) map[material.Type]float64
	UpdateCapacity(ctx context.Context, typ material.Type, capacity float64) error
}
