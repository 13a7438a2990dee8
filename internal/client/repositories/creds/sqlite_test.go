package creds

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credsrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credentials;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKeyReturnsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteRepository_SetGetRoundtrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, "tok-123"))

	got, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)
}

func TestSQLiteRepository_SetUpserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, "old"))
	require.NoError(t, r.Set(ctx, TokenKey, "new"))

	got, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, "tok-123"))
	require.NoError(t, r.Delete(ctx, TokenKey))

	got, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, "tok-123"))
	require.NoError(t, r.Set(ctx, "refresh", "tok-456"))
	require.NoError(t, r.Clear(ctx))

	for _, key := range []string{TokenKey, "refresh"} {
		got, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
}
