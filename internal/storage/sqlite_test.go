package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/AlistairHeus/feed-assignment/internal/dbx"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storage_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM kv`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	v, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SessionKey, []byte(`{"v":1}`)))

	v, err := repo.Get(ctx, SessionKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"v":1}`), v)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("old")))
	require.NoError(t, repo.Set(ctx, "k", []byte("new")))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKey(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting a missing key is not an error
	require.NoError(t, repo.Delete(ctx, "k"))
}

func TestClear_RemovesEverything(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := repo.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}

func TestRepository_WorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, "tx-key", []byte("tx-value")); err != nil {
			return err
		}
		v, err := repo.Get(ctx, "tx-key")
		if err != nil {
			return err
		}
		require.Equal(t, []byte("tx-value"), v)
		return nil
	})
	require.NoError(t, err)

	v, err := NewSQLiteRepository(db).Get(ctx, "tx-key")
	require.NoError(t, err)
	require.Equal(t, []byte("tx-value"), v)
}
