package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := dbx.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, common.KeyRecordings, []byte(`[]`)))
	require.NoError(t, r.Set(ctx, common.KeyRecordings, []byte(`[{"id":"1"}]`)))

	v, err := r.Get(ctx, common.KeyRecordings)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_NilValueStoredEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))
	_, err := r.Get(ctx, "a")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.Clear(ctx))
	_, err = r.Get(ctx, "b")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_InsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, "session", []byte("{}"))
	})
	require.NoError(t, err)

	v, err := NewSQLiteRepository(db).Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(v))
}
