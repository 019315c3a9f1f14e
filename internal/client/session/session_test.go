package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/storage"
	"github.com/avendano-dev/backoffice/internal/common"
)

// ---- fakes ----

// fakeStore is a map-backed storage.Repository.
type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	return f.data[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	f.data[key] = value
	return nil
}

func (f *fakeStore) SetMany(ctx context.Context, pairs map[string][]byte) error {
	for k, v := range pairs {
		f.data[k] = v
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeStore) DeleteMany(ctx context.Context, keys []string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// fakeAuthAPI implements AuthAPI with pluggable behavior and records calls.
type fakeAuthAPI struct {
	LoginFn   func(ctx context.Context, email, password string) (*models.LoginResponse, error)
	RefreshFn func(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	LogoutErr error

	LoginCalls   int
	RefreshCalls int
	LogoutCalls  int

	LastLoginEmail    string
	LastLoginPassword string
	LastRefreshToken  string
	LastLogoutToken   string
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginFn(ctx, email, password)
}

func (f *fakeAuthAPI) Logout(ctx context.Context, refreshToken string) error {
	f.LogoutCalls++
	f.LastLogoutToken = refreshToken
	return f.LogoutErr
}

func (f *fakeAuthAPI) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	f.RefreshCalls++
	f.LastRefreshToken = refreshToken
	return f.RefreshFn(ctx, refreshToken)
}

func okLogin(access, refresh string) func(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	return func(ctx context.Context, email, password string) (*models.LoginResponse, error) {
		return &models.LoginResponse{
			Access:    access,
			Refresh:   refresh,
			TokenType: "bearer",
			User:      models.User{ID: 1, Email: email, IsActive: true},
		}, nil
	}
}

// ---- TESTS ----

func TestLogin_Success(t *testing.T) {
	api := &fakeAuthAPI{LoginFn: okLogin("acc-1", "ref-1")}
	store := newFakeStore()
	m := NewManager(api, store, nil)

	err := m.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "acc-1", m.AccessToken())
	require.Equal(t, "ref-1", m.RefreshToken())
	require.Equal(t, "a@x.com", m.CurrentUser().Email)
	require.Equal(t, "secret1", api.LastLoginPassword)

	require.Equal(t, []byte("acc-1"), store.data[storage.KeyAccessToken])
	require.Equal(t, []byte("ref-1"), store.data[storage.KeyRefreshToken])
	require.NotEmpty(t, store.data[storage.KeyUser])
}

func TestLogin_FailureLeavesPriorSessionUntouched(t *testing.T) {
	api := &fakeAuthAPI{LoginFn: okLogin("acc-1", "ref-1")}
	m := NewManager(api, newFakeStore(), nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	api.LoginFn = func(ctx context.Context, email, password string) (*models.LoginResponse, error) {
		return nil, common.ErrInvalidCredentials
	}
	err := m.Login(context.Background(), "b@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "a@x.com", m.CurrentUser().Email)
	require.Equal(t, "acc-1", m.AccessToken())
}

func TestLogout_ClearsEverything(t *testing.T) {
	api := &fakeAuthAPI{LoginFn: okLogin("acc-1", "ref-1")}
	store := newFakeStore()
	m := NewManager(api, store, nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	require.NoError(t, m.Logout(context.Background()))

	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())
	require.Empty(t, m.AccessToken())
	require.Empty(t, m.RefreshToken())
	require.Nil(t, store.data[storage.KeyAccessToken])
	require.Nil(t, store.data[storage.KeyRefreshToken])
	require.Nil(t, store.data[storage.KeyUser])
	require.Equal(t, "ref-1", api.LastLogoutToken)
}

func TestLogout_ServerFailureDoesNotBlockTeardown(t *testing.T) {
	api := &fakeAuthAPI{
		LoginFn:   okLogin("acc-1", "ref-1"),
		LogoutErr: errors.New("server down"),
	}
	m := NewManager(api, newFakeStore(), nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	require.NoError(t, m.Logout(context.Background()))
	require.False(t, m.IsAuthenticated())
}

func TestLogout_WithoutSessionIsNoop(t *testing.T) {
	api := &fakeAuthAPI{}
	m := NewManager(api, newFakeStore(), nil)

	require.NoError(t, m.Logout(context.Background()))
	require.Zero(t, api.LogoutCalls)
}

// A login response that lands after logout must not repopulate the session.
func TestLogin_LateResponseAfterLogoutIsDiscarded(t *testing.T) {
	store := newFakeStore()
	var m *Manager
	api := &fakeAuthAPI{}
	api.LoginFn = func(ctx context.Context, email, password string) (*models.LoginResponse, error) {
		// Session is torn down while this "request" is in flight.
		require.NoError(t, m.Logout(ctx))
		return okLogin("acc-late", "ref-late")(ctx, email, password)
	}
	m = NewManager(api, store, nil)

	err := m.Login(context.Background(), "a@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrSessionExpired)

	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.AccessToken())
	require.Nil(t, store.data[storage.KeyAccessToken])
}

func TestRefresh_ReplacesOnlyAccessToken(t *testing.T) {
	api := &fakeAuthAPI{
		LoginFn: okLogin("acc-1", "ref-1"),
		RefreshFn: func(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
			return &models.RefreshResponse{Access: "acc-2", TokenType: "bearer"}, nil
		},
	}
	store := newFakeStore()
	m := NewManager(api, store, nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	require.NoError(t, m.Refresh(context.Background()))

	require.Equal(t, "acc-2", m.AccessToken())
	require.Equal(t, "ref-1", m.RefreshToken())
	require.Equal(t, "ref-1", api.LastRefreshToken)
	require.Equal(t, []byte("acc-2"), store.data[storage.KeyAccessToken])
	require.Equal(t, []byte("ref-1"), store.data[storage.KeyRefreshToken])
}

func TestRefresh_HonorsServerRotation(t *testing.T) {
	api := &fakeAuthAPI{
		LoginFn: okLogin("acc-1", "ref-1"),
		RefreshFn: func(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
			return &models.RefreshResponse{Access: "acc-2", Refresh: "ref-2", TokenType: "bearer"}, nil
		},
	}
	m := NewManager(api, newFakeStore(), nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	require.NoError(t, m.Refresh(context.Background()))
	require.Equal(t, "ref-2", m.RefreshToken())
}

func TestRefresh_WithoutTokenFails(t *testing.T) {
	api := &fakeAuthAPI{}
	m := NewManager(api, newFakeStore(), nil)

	err := m.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrNoRefreshToken)
	require.Zero(t, api.RefreshCalls)
}

func TestRefresh_RejectionClearsSession(t *testing.T) {
	api := &fakeAuthAPI{
		LoginFn: okLogin("acc-1", "ref-1"),
		RefreshFn: func(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
			return nil, common.ErrSessionExpired
		},
	}
	store := newFakeStore()
	m := NewManager(api, store, nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	err := m.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrRefreshRejected)

	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.AccessToken())
	require.Nil(t, store.data[storage.KeyUser])
	require.Equal(t, 1, api.RefreshCalls)
}

func TestRestore_ActivatesPersistedSession(t *testing.T) {
	store := newFakeStore()
	store.data[storage.KeyAccessToken] = []byte("acc-1")
	store.data[storage.KeyRefreshToken] = []byte("ref-1")
	store.data[storage.KeyUser] = []byte(`{"id":1,"email":"a@x.com"}`)

	m := NewManager(&fakeAuthAPI{}, store, nil)
	require.NoError(t, m.Restore(context.Background()))

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "a@x.com", m.CurrentUser().Email)
	require.Equal(t, "acc-1", m.AccessToken())
}

// Restoring twice with the same stored values ends in the same state as once.
func TestRestore_Idempotent(t *testing.T) {
	store := newFakeStore()
	store.data[storage.KeyAccessToken] = []byte("acc-1")
	store.data[storage.KeyRefreshToken] = []byte("ref-1")
	store.data[storage.KeyUser] = []byte(`{"id":1,"email":"a@x.com"}`)

	m := NewManager(&fakeAuthAPI{}, store, nil)
	require.NoError(t, m.Restore(context.Background()))
	require.NoError(t, m.Restore(context.Background()))

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "acc-1", m.AccessToken())
	require.Equal(t, "ref-1", m.RefreshToken())
	require.Equal(t, 1, m.CurrentUser().ID)
}

func TestRestore_MissingFieldsMeansNoSession(t *testing.T) {
	store := newFakeStore()
	store.data[storage.KeyAccessToken] = []byte("acc-1")
	// refresh token and user absent

	m := NewManager(&fakeAuthAPI{}, store, nil)
	require.NoError(t, m.Restore(context.Background()))
	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.AccessToken())
}

func TestRestore_MalformedUserMeansNoSession(t *testing.T) {
	store := newFakeStore()
	store.data[storage.KeyAccessToken] = []byte("acc-1")
	store.data[storage.KeyRefreshToken] = []byte("ref-1")
	store.data[storage.KeyUser] = []byte(`{not json`)

	m := NewManager(&fakeAuthAPI{}, store, nil)
	require.NoError(t, m.Restore(context.Background()))
	require.False(t, m.IsAuthenticated())
}

func TestSubscribe_NotifiedOnTransitions(t *testing.T) {
	api := &fakeAuthAPI{LoginFn: okLogin("acc-1", "ref-1")}
	m := NewManager(api, newFakeStore(), nil)

	var states []State
	unsub := m.Subscribe(func(st State) { states = append(states, st) })

	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))
	require.NoError(t, m.Logout(context.Background()))

	require.Len(t, states, 2)
	require.True(t, states[0].Authenticated)
	require.Equal(t, "a@x.com", states[0].User.Email)
	require.False(t, states[1].Authenticated)
	require.Nil(t, states[1].User)

	unsub()
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))
	require.Len(t, states, 2)
}

func TestTokenClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	api := &fakeAuthAPI{LoginFn: okLogin(token, "ref-1")}
	m := NewManager(api, newFakeStore(), nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	sub, expiresAt, ok := m.TokenClaims()
	require.True(t, ok)
	require.Equal(t, "1", sub)
	require.Equal(t, exp.Unix(), expiresAt.Unix())
}

func TestTokenClaims_OpaqueToken(t *testing.T) {
	api := &fakeAuthAPI{LoginFn: okLogin("not-a-jwt", "ref-1")}
	m := NewManager(api, newFakeStore(), nil)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	_, _, ok := m.TokenClaims()
	require.False(t, ok)
}
