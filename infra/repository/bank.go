// Package repository contains the GORM adapters behind the contracts in
// pkg/repository. One SQLite file per service; rows are mapped to domain
// types at this boundary so nothing above it sees GORM.
package repository

import (
	"context"
	"errors"

	"github.com/archlab/patterns/pkg/domain/bank"
	"github.com/archlab/patterns/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates the write-model gateway for accounts.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, owner string, balance decimal.Decimal) (*bank.Account, error) {
	row := Account{Owner: owner, Balance: balance}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return mapAccountToDomain(&row), nil
}

func (r *accountRepository) Get(ctx context.Context, id uint) (*bank.Account, error) {
	var row Account
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapAccountToDomain(&row), nil
}

func (r *accountRepository) List(ctx context.Context) ([]*bank.Account, error) {
	var rows []Account
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	accounts := make([]*bank.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, mapAccountToDomain(&rows[i]))
	}
	return accounts, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}

func mapAccountToDomain(row *Account) *bank.Account {
	return &bank.Account{
		ID:      row.ID,
		Owner:   row.Owner,
		Balance: row.Balance,
	}
}

type balanceProjectionRepository struct {
	db *gorm.DB
}

// NewBalanceProjectionRepository creates the read-model gateway for the
// denormalized balances table.
func NewBalanceProjectionRepository(db *gorm.DB) repository.BalanceProjectionRepository {
	return &balanceProjectionRepository{db: db}
}

func (r *balanceProjectionRepository) Upsert(ctx context.Context, accountID uint, balance decimal.Decimal) error {
	row := AccountBalance{AccountID: accountID, Balance: balance}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance"}),
		}).
		Create(&row).Error
}

func (r *balanceProjectionRepository) Get(ctx context.Context, accountID uint) (*decimal.Decimal, error) {
	var row AccountBalance
	if err := r.db.WithContext(ctx).First(&row, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row.Balance, nil
}

// BankUoW scopes a group of write-model operations to one transaction.
type BankUoW struct {
	db *gorm.DB
}

// NewBankUoW creates a unit of work over the given *gorm.DB.
func NewBankUoW(db *gorm.DB) *BankUoW {
	return &BankUoW{db: db}
}

// Do runs fn inside a transaction, handing it an account repository bound
// to that transaction. Rolls back when fn returns an error.
func (u *BankUoW) Do(ctx context.Context, fn func(accounts repository.AccountRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewAccountRepository(tx))
	})
}

var _ repository.BankUnitOfWork = (*BankUoW)(nil)
