// Package session persists the signed-in user's tokens, id, role and the
// remember-me credentials behind a single injected Context.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/models"
)

const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
	KeyRole         = "role"
	keyRemember     = "remember:"
)

var knownRoles = []models.Role{models.RoleJobSeeker, models.RoleCompany}

// Context is the only way the rest of the client reads or writes persisted state.
type Context interface {
	// GetSession returns the stored session, or a zero Session when none is held.
	GetSession(ctx context.Context) (models.Session, error)
	SetSession(ctx context.Context, s models.Session) error
	// ClearSession removes every entry, remembered credentials included.
	ClearSession(ctx context.Context) error
	Remember(ctx context.Context, creds models.Credentials) error
	// Recall returns nil when nothing is remembered for role.
	Recall(ctx context.Context, role models.Role) (*models.Credentials, error)
}

// Backend is a flat string key/value store.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Manager implements Context over a Backend, namespacing keys with a prefix.
type Manager struct {
	backend Backend
	prefix  string
	logger  logger.Logger
}

var _ Context = (*Manager)(nil)

func NewManager(backend Backend, prefix string, log logger.Logger) *Manager {
	return &Manager{
		backend: backend,
		prefix:  prefix,
		logger:  log.WithFields(map[string]interface{}{"component": "session"}),
	}
}

func (m *Manager) key(name string) string {
	if m.prefix == "" {
		return name
	}
	return m.prefix + ":" + name
}

func (m *Manager) GetSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	var role string

	fields := []struct {
		name string
		dst  *string
	}{
		{KeyAccessToken, &s.AccessToken},
		{KeyRefreshToken, &s.RefreshToken},
		{KeyUserID, &s.UserID},
		{KeyRole, &role},
	}
	for _, f := range fields {
		v, _, err := m.backend.Get(ctx, m.key(f.name))
		if err != nil {
			return models.Session{}, apperrors.NewSessionStoreError("get "+f.name, err)
		}
		*f.dst = v
	}
	s.Role = models.Role(role)

	if s.AccessToken == "" {
		return models.Session{}, nil
	}
	return s, nil
}

func (m *Manager) SetSession(ctx context.Context, s models.Session) error {
	if s.AccessToken == "" {
		return fmt.Errorf("session: access token is required")
	}

	entries := []struct {
		name  string
		value string
	}{
		{KeyAccessToken, s.AccessToken},
		{KeyRefreshToken, s.RefreshToken},
		{KeyUserID, s.UserID},
		{KeyRole, string(s.Role)},
	}

	for _, e := range entries {
		if e.value == "" {
			if err := m.backend.Delete(ctx, m.key(e.name)); err != nil {
				return apperrors.NewSessionStoreError("delete "+e.name, err)
			}
			continue
		}
		if err := m.backend.Set(ctx, m.key(e.name), e.value); err != nil {
			return apperrors.NewSessionStoreError("set "+e.name, err)
		}
	}

	m.logger.Debug("session stored", map[string]interface{}{"userId": s.UserID, "role": s.Role})
	return nil
}

func (m *Manager) ClearSession(ctx context.Context) error {
	keys := []string{
		m.key(KeyAccessToken),
		m.key(KeyRefreshToken),
		m.key(KeyUserID),
		m.key(KeyRole),
	}
	for _, role := range knownRoles {
		keys = append(keys, m.key(keyRemember+string(role)))
	}

	if err := m.backend.Delete(ctx, keys...); err != nil {
		return apperrors.NewSessionStoreError("clear", err)
	}

	m.logger.Debug("session cleared", nil)
	return nil
}

func (m *Manager) Remember(ctx context.Context, creds models.Credentials) error {
	if !creds.Role.Valid() {
		return fmt.Errorf("session: cannot remember credentials for role %q", creds.Role)
	}

	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("session: encode credentials: %w", err)
	}

	if err := m.backend.Set(ctx, m.key(keyRemember+string(creds.Role)), string(raw)); err != nil {
		return apperrors.NewSessionStoreError("remember", err)
	}
	return nil
}

func (m *Manager) Recall(ctx context.Context, role models.Role) (*models.Credentials, error) {
	raw, ok, err := m.backend.Get(ctx, m.key(keyRemember+string(role)))
	if err != nil {
		return nil, apperrors.NewSessionStoreError("recall", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var creds models.Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		m.logger.Warn("discarding unreadable remembered credentials", map[string]interface{}{
			"role":  role,
			"error": err.Error(),
		})
		return nil, nil
	}
	return &creds, nil
}
