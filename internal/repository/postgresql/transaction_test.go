package postgresql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := testDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	name := fmt.Sprintf("tx-dept-%d", time.Now().UnixNano())
	rowErr := errors.New("row rejected")

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if _, err := repo.Create(txCtx, department.Department{Name: name, IsActive: true}); err != nil {
			return err
		}
		return rowErr
	})
	require.ErrorIs(t, err, rowErr)

	// The insert above must not have survived the rollback.
	_, err = repo.GetByName(ctx, name)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestWithTransactionCommits(t *testing.T) {
	db := testDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	name := fmt.Sprintf("tx-dept-%d", time.Now().UnixNano())

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := repo.Create(txCtx, department.Department{Name: name, IsActive: true})
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, got.ID) })
	assert.Equal(t, name, got.Name)
}
