package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestRepository_GetMissingKey(t *testing.T) {
	r := setupRepo(t)

	v, err := r.Get(context.Background(), KeyAccessToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRepository_SetGetOverwrite(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAccessToken, []byte("tok1")))

	v, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok1"), v)

	require.NoError(t, r.Set(ctx, KeyAccessToken, []byte("tok2")))
	v, err = r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok2"), v)
}

func TestRepository_SetMany(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	err := r.SetMany(ctx, map[string][]byte{
		KeyAccessToken:  []byte("a"),
		KeyRefreshToken: []byte("r"),
		KeyUser:         []byte(`{"id":1}`),
	})
	require.NoError(t, err)

	for key, want := range map[string][]byte{
		KeyAccessToken:  []byte("a"),
		KeyRefreshToken: []byte("r"),
		KeyUser:         []byte(`{"id":1}`),
	} {
		v, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestRepository_DeleteMany(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		KeyAccessToken:      []byte("a"),
		KeyRefreshToken:     []byte("r"),
		KeySidebarCollapsed: []byte("true"),
	}))

	require.NoError(t, r.DeleteMany(ctx, []string{KeyAccessToken, KeyRefreshToken}))

	v, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Nil(t, v)

	// unrelated keys survive
	v, err = r.Get(ctx, KeySidebarCollapsed)
	require.NoError(t, err)
	require.Equal(t, []byte("true"), v)
}

func TestRepository_DeleteMissingKeyIsNoop(t *testing.T) {
	r := setupRepo(t)
	require.NoError(t, r.Delete(context.Background(), "nope"))
}
