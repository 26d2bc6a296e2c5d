package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AllenLeeyn/graphql/internal/models"
	"github.com/AllenLeeyn/graphql/internal/platform"
)

// SigninAPI is the slice of the platform client the session manager needs.
type SigninAPI interface {
	Signin(ctx context.Context, identifier, secret string) (string, error)
}

// Manager gates the two top-level states: a request either resolves to a
// still-valid platform token (logged in) or it does not.
type Manager struct {
	platform SigninAPI
	store    Store
	maxTTL   time.Duration
}

func NewManager(platform SigninAPI, store Store, maxTTL time.Duration) *Manager {
	return &Manager{platform: platform, store: store, maxTTL: maxTTL}
}

// Login validates the credential fields, exchanges them with the platform and
// stores the returned token under a fresh opaque session id.
func (m *Manager) Login(ctx context.Context, identifier, secret string) (*models.Session, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(identifier) == "" {
		fields["identifier"] = "Email/ Username is required."
	}
	if strings.TrimSpace(secret) == "" {
		fields["secret"] = "Password is required."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	token, err := m.platform.Signin(ctx, identifier, secret)
	if err != nil {
		var reqErr *platform.RequestError
		if errors.As(err, &reqErr) {
			return nil, &UnauthorizedError{Message: reqErr.Message}
		}
		return nil, err
	}

	exp, ok := ExpiresAt(token)
	if !ok || !IsValid(token) {
		return nil, &UnauthorizedError{Message: "Signin returned an invalid token"}
	}

	ttl := time.Until(exp)
	if m.maxTTL > 0 && ttl > m.maxTTL {
		ttl = m.maxTTL
	}

	id := uuid.NewString()
	if err := m.store.Set(ctx, id, token, ttl); err != nil {
		return nil, err
	}

	return &models.Session{ID: id, ExpiresAt: exp}, nil
}

// Logout clears the stored credential. Unknown sessions are not an error.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// Token resolves a session id back to a still-valid platform token. A missing
// or expired credential flips the caller to the logged-out state.
func (m *Manager) Token(ctx context.Context, sessionID string) (string, error) {
	token, err := m.store.Get(ctx, sessionID)
	if errors.Is(err, ErrNoSession) {
		return "", &UnauthorizedError{Message: "Session not found. Please log in."}
	}
	if err != nil {
		return "", err
	}
	if !IsValid(token) {
		m.store.Delete(ctx, sessionID)
		return "", &UnauthorizedError{Message: "Session has expired. Please log in again."}
	}
	return token, nil
}
