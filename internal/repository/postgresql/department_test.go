package postgresql

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(db.Close)
	return db
}

func TestDepartmentRepository(t *testing.T) {
	db := testDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	name := fmt.Sprintf("test-dept-%d", time.Now().UnixNano())

	created, err := repo.Create(ctx, department.Department{
		Name:        name,
		Description: "temporary department for repository tests",
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	t.Cleanup(func() {
		_ = repo.Delete(ctx, created.ID)
	})

	got, err := repo.GetByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Zero(t, got.EmployeeCount)
	assert.Nil(t, got.ManagerName)

	// The unique index on name rejects a duplicate.
	_, err = repo.Create(ctx, department.Department{Name: name, IsActive: true})
	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)

	got.Description = "updated description"
	require.NoError(t, repo.Update(ctx, got))
	reread, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated description", reread.Description)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
