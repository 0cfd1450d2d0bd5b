package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email and password do not match an identity.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired is returned when a token is expired, malformed or revoked.
var ErrSessionExpired = errors.New("session expired")

// BootstrapEmail is the sign-in email of the super-user created on first start.
const BootstrapEmail = "admin@greengirl.local"

// Service provides password authentication and session token management.
type Service struct {
	accounts   AccountRepository
	sessions   SessionStore
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewService creates a new auth Service.
func NewService(accounts AccountRepository, sessions SessionStore, secret []byte, tokenTTL time.Duration, bcryptCost int) *Service {
	return &Service{
		accounts:   accounts,
		sessions:   sessions,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// SignIn checks the password and opens a new session, returning the identity
// and its signed token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("fetching account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, err := GenerateToken(account.ID, sessionID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	if err := s.sessions.Save(ctx, sessionID, account.ID, s.tokenTTL); err != nil {
		return nil, "", err
	}

	return account.identity(), token, nil
}

// SignOut revokes the session behind the token. Invalid tokens are ignored.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := ParseToken(token, s.secret)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// Verify resolves a token to its identity, checking that the session is still live.
func (s *Service) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := ParseToken(token, s.secret)
	if err != nil {
		return nil, ErrSessionExpired
	}

	owner, err := s.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	if owner.String() != claims.UserID {
		return nil, ErrSessionExpired
	}

	account, err := s.accounts.GetByID(ctx, owner)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("fetching account: %w", err)
	}

	return account.identity(), nil
}

// SignUp registers a new identity with the given metadata.
func (s *Service) SignUp(ctx context.Context, email, password string, meta Metadata) (*Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &Account{
		Email:        email,
		PasswordHash: string(hash),
		Name:         meta.Name,
		Role:         meta.Role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account.identity(), nil
}

// UpdateCredentials changes the email and/or password of an identity.
// Empty values leave the corresponding field unchanged.
func (s *Service) UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*Identity, error) {
	if email = strings.TrimSpace(email); email != "" {
		if err := s.accounts.UpdateEmail(ctx, id, email); err != nil {
			return nil, err
		}
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		if err := s.accounts.UpdatePassword(ctx, id, string(hash)); err != nil {
			return nil, err
		}
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.identity(), nil
}

// UpdateRole records role in the identity metadata, which seeds the profile
// whenever it has to be re-created.
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	return s.accounts.UpdateRole(ctx, id, role)
}

// BootstrapSuperuser creates the initial super-user identity if none exist.
// Returns the generated password (only displayed once). If identities already
// exist, returns empty string.
func (s *Service) BootstrapSuperuser(ctx context.Context) (string, error) {
	count, err := s.accounts.CountAll(ctx)
	if err != nil {
		return "", fmt.Errorf("counting identities: %w", err)
	}

	if count > 0 {
		return "", nil
	}

	password, err := generatePassword()
	if err != nil {
		return "", err
	}

	if _, err := s.SignUp(ctx, BootstrapEmail, password, Metadata{Name: "Administrador", Role: "super-user"}); err != nil {
		return "", fmt.Errorf("creating super-user: %w", err)
	}

	slog.Info("super-user created", "email", BootstrapEmail, "password", password)

	return password, nil
}

func generatePassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
