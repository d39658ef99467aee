package db_test

import (
	"context"
	"testing"

	"library-management-system/db"
	"library-management-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRepo opens an in-memory sqlite with a single connection (so every
// statement sees the same database) and runs the real migration.
func newTestRepo(t *testing.T) (*db.Repo, *gorm.DB) {
	t.Helper()

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(g))
	return db.NewRepo(g), g
}

func createBook(t *testing.T, r *db.Repo, title string, copies int) *models.Book {
	t.Helper()
	b := &models.Book{
		ID:          uuid.NewString(),
		Title:       title,
		Author:      "Test Author",
		ISBN:        "isbn-" + uuid.NewString(),
		Category:    "Fiction",
		TotalCopies: copies,
	}
	require.NoError(t, r.CreateBook(context.Background(), b))
	return b
}

func createMember(t *testing.T, r *db.Repo, name string) *models.Member {
	t.Helper()
	m := &models.Member{
		ID:    uuid.NewString(),
		Name:  name,
		Email: uuid.NewString() + "@example.com",
	}
	require.NoError(t, r.CreateMember(context.Background(), m))
	return m
}

func bookAvailable(t *testing.T, r *db.Repo, id string) int {
	t.Helper()
	b, err := r.FindBookByID(context.Background(), id)
	require.NoError(t, err)
	return b.AvailableCopies
}
