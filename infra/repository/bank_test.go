package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/archlab/patterns/infra/database"
	infrarepo "github.com/archlab/patterns/infra/repository"
)

func newBankDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	require.NoError(t, infrarepo.MigrateBank(db))
	return db
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	repo := infrarepo.NewAccountRepository(newBankDB(t))
	ctx := context.Background()

	acct, err := repo.Create(ctx, "alice", decimal.NewFromInt(7))
	require.NoError(t, err)
	require.NotZero(t, acct.ID)

	loaded, err := repo.Get(ctx, acct.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "alice", loaded.Owner)
	assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(7)))
}

func TestAccountRepository_GetAbsent(t *testing.T) {
	repo := infrarepo.NewAccountRepository(newBankDB(t))

	loaded, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, loaded, "absence is not an error")
}

func TestAccountRepository_ListOrder(t *testing.T) {
	repo := infrarepo.NewAccountRepository(newBankDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, "a", decimal.Zero)
	require.NoError(t, err)
	b, err := repo.Create(ctx, "b", decimal.Zero)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

func TestBalanceProjection_UpsertIsIdempotentByKey(t *testing.T) {
	repo := infrarepo.NewBalanceProjectionRepository(newBankDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, decimal.NewFromInt(10)))
	require.NoError(t, repo.Upsert(ctx, 1, decimal.NewFromInt(25)))

	balance, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.True(t, balance.Equal(decimal.NewFromInt(25)), "second upsert must overwrite, not duplicate")
}

func TestBalanceProjection_GetAbsent(t *testing.T) {
	repo := infrarepo.NewBalanceProjectionRepository(newBankDB(t))

	balance, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, balance)
}
