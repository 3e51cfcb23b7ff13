package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/degreekit/advisor/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func trackExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	err := database.QueryRow(`SELECT COUNT(*) FROM tracks WHERE id = ?`, id).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tracks (id, name) VALUES (?, ?)`, "MI", "Machine Intelligence")
		return err
	})
	require.NoError(t, err)

	assert.True(t, trackExists(t, database, "MI"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tracks (id, name) VALUES (?, ?)`, "SE", "Software Engineering")
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, trackExists(t, database, "SE"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO tracks (id, name) VALUES (?, ?)`, "CG", "Graphics")
			panic("boom")
		})
	})

	assert.False(t, trackExists(t, database, "CG"), "row should not exist after panic rollback")
}
