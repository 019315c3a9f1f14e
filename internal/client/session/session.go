// Package session owns the authentication state of the client: the current
// user and the access/refresh token pair. It is the single writer of the
// persisted session keys and exposes the state to guards and UI through
// read-only accessors and change subscriptions.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/storage"
	"github.com/avendano-dev/backoffice/internal/common"
	"github.com/avendano-dev/backoffice/internal/logging"
)

// AuthAPI is the slice of the REST surface the manager needs. The api
// package implements it with bypass-tagged raw calls so the authorization
// pipeline never recurses into itself.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
}

// State is an atomic snapshot of the session delivered to subscribers.
type State struct {
	User          *models.User
	Authenticated bool
}

// Manager is the session/token manager. All state transitions (login,
// logout, refresh, restore) are atomic with respect to readers and
// subscribers.
type Manager struct {
	api   AuthAPI
	store storage.Repository
	log   logging.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *models.User
	// generation increments on logout so a network response that was in
	// flight when the session was torn down cannot resurrect it.
	generation uint64

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func NewManager(api AuthAPI, store storage.Repository, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		subs:  make(map[int]func(State)),
	}
}

// Login authenticates against the backend. On success the tokens and user
// are persisted and installed atomically. On failure any prior session is
// left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.RLock()
	gen := m.generation
	m.mu.RUnlock()

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	m.mu.Lock()
	if m.generation != gen {
		// Session was torn down while the request was in flight.
		m.mu.Unlock()
		m.log.Warn(ctx, "discarding stale login response", "user", resp.User.Email)
		return common.ErrSessionExpired
	}
	if err := m.store.SetMany(ctx, map[string][]byte{
		storage.KeyAccessToken:  []byte(resp.Access),
		storage.KeyRefreshToken: []byte(resp.Refresh),
		storage.KeyUser:         userJSON,
	}); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.accessToken = resp.Access
	m.refreshToken = resp.Refresh
	user := resp.User
	m.user = &user
	st := m.stateLocked()
	m.mu.Unlock()

	m.log.Info(ctx, "logged in", "user", resp.User.Email)
	m.notify(st)
	return nil
}

// Logout tears the session down unconditionally. The server is notified on a
// best-effort basis; a failure there never blocks the local teardown.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	refresh := m.refreshToken
	hadSession := m.user != nil || m.accessToken != "" || m.refreshToken != ""
	m.accessToken = ""
	m.refreshToken = ""
	m.user = nil
	m.generation++
	st := m.stateLocked()
	m.mu.Unlock()

	if !hadSession {
		return nil
	}

	if refresh != "" {
		if err := m.api.Logout(ctx, refresh); err != nil {
			m.log.Warn(ctx, "server logout failed", "error", err)
		}
	}

	if err := m.store.DeleteMany(ctx, []string{
		storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser,
	}); err != nil {
		m.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}

	m.log.Info(ctx, "logged out")
	m.notify(st)
	return nil
}

// Refresh exchanges the stored refresh token for a new access token. The
// refresh token is retained unless the server returns a replacement. Any
// failure clears the whole session; refresh is never retried.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.RLock()
	refresh := m.refreshToken
	gen := m.generation
	m.mu.RUnlock()

	if refresh == "" {
		return common.ErrNoRefreshToken
	}

	resp, err := m.api.Refresh(ctx, refresh)
	if err != nil {
		m.log.Warn(ctx, "token refresh rejected", "error", err)
		_ = m.Logout(ctx)
		return fmt.Errorf("%w: %w", common.ErrRefreshRejected, err)
	}

	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		m.log.Warn(ctx, "discarding stale refresh response")
		return common.ErrSessionExpired
	}
	pairs := map[string][]byte{storage.KeyAccessToken: []byte(resp.Access)}
	if resp.Refresh != "" {
		pairs[storage.KeyRefreshToken] = []byte(resp.Refresh)
	}
	if err := m.store.SetMany(ctx, pairs); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	m.accessToken = resp.Access
	if resp.Refresh != "" {
		m.refreshToken = resp.Refresh
	}
	m.mu.Unlock()

	m.log.Debug(ctx, "access token refreshed")
	return nil
}

// Restore activates a previously persisted session without contacting the
// server. Missing or malformed data is treated as "no session"; Restore
// never fails for that reason and never partially activates.
func (m *Manager) Restore(ctx context.Context) error {
	access, err := m.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	refresh, err := m.store.Get(ctx, storage.KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	userJSON, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}

	if len(access) == 0 || len(refresh) == 0 || len(userJSON) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		m.log.Warn(ctx, "malformed persisted user, ignoring session", "error", err)
		return nil
	}

	m.mu.Lock()
	m.accessToken = string(access)
	m.refreshToken = string(refresh)
	m.user = &user
	st := m.stateLocked()
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", user.Email)
	m.notify(st)
	return nil
}

// AccessToken returns the current access token, or "" when logged out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// RefreshToken returns the current refresh token, or "" when logged out.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshToken
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// Subscribe registers fn to be called with a state snapshot after every
// session transition. The returned function unsubscribes.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// TokenClaims decodes the access token without verifying its signature and
// returns the subject and expiry. Display only; authorization always happens
// server-side.
func (m *Manager) TokenClaims() (subject string, expiresAt time.Time, ok bool) {
	m.mu.RLock()
	token := m.accessToken
	m.mu.RUnlock()

	if token == "" {
		return "", time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return "", time.Time{}, false
	}
	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return claims.Subject, exp, true
}

func (m *Manager) stateLocked() State {
	st := State{Authenticated: m.user != nil}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	return st
}

func (m *Manager) notify(st State) {
	m.subMu.Lock()
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
