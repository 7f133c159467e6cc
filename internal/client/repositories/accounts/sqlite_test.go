package accounts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE accounts (
  username TEXT PRIMARY KEY,
  refresh_token TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsert_InsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "alex", RefreshToken: "rt1", Active: true}))

	var token string
	var active int
	err := db.QueryRow(`SELECT refresh_token, active FROM accounts WHERE username=?`, "alex").Scan(&token, &active)
	require.NoError(t, err)
	assert.Equal(t, "rt1", token)
	assert.Equal(t, 1, active)

	// same username: token rotates, active flag is untouched
	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "alex", RefreshToken: "rt2", Active: false}))

	err = db.QueryRow(`SELECT refresh_token, active FROM accounts WHERE username=?`, "alex").Scan(&token, &active)
	require.NoError(t, err)
	assert.Equal(t, "rt2", token)
	assert.Equal(t, 1, active)
}

func TestSetActive_DeactivatesOthers(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "alex", RefreshToken: "rt1", Active: true}))
	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "maria", RefreshToken: "rt2"}))

	require.NoError(t, r.SetActive(ctx, "maria"))

	active, err := r.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "maria", active.Username)
	assert.True(t, active.Active)
}

func TestSetActive_UnknownUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	err := r.SetActive(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetActive_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.GetActive(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_ActiveFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "alex", RefreshToken: "rt1"}))
	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "maria", RefreshToken: "rt2"}))
	require.NoError(t, r.SetActive(ctx, "maria"))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "maria", list[0].Username)
	assert.Equal(t, "alex", list[1].Username)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Account{Username: "alex", RefreshToken: "rt1"}))
	require.NoError(t, r.Delete(ctx, "alex"))
	require.NoError(t, r.Delete(ctx, "alex"))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
