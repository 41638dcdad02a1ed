// Package repository defines the persistence contracts implemented by the
// GORM adapters in infra/repository.
package repository

import (
	"context"

	"github.com/archlab/patterns/pkg/domain/bank"
	"github.com/shopspring/decimal"
)

// AccountRepository is the write-model storage gateway for accounts.
// Get returns (nil, nil) when the account does not exist; absence is a
// domain concern, not a storage error.
type AccountRepository interface {
	Create(ctx context.Context, owner string, balance decimal.Decimal) (*bank.Account, error)
	Get(ctx context.Context, id uint) (*bank.Account, error)
	List(ctx context.Context) ([]*bank.Account, error)
	UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error
}

// BalanceProjectionRepository is the read-model gateway: one denormalized
// balance row per account, rewritten after every write-model mutation.
type BalanceProjectionRepository interface {
	Upsert(ctx context.Context, accountID uint, balance decimal.Decimal) error
	// Get returns (nil, nil) when no projection row exists.
	Get(ctx context.Context, accountID uint) (*decimal.Decimal, error)
}

// BankUnitOfWork runs fn inside one storage transaction. The repository
// passed to fn is bound to that transaction, so existence and sufficiency
// checks are evaluated against the same state the mutation writes.
type BankUnitOfWork interface {
	Do(ctx context.Context, fn func(accounts AccountRepository) error) error
}
