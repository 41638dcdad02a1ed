// Package bank implements the bank service layer as transaction scripts:
// each operation is one linear unit that validates input, mutates the
// write model inside a unit of work, and publishes a change event for the
// balances projection.
package bank

import (
	"context"
	"log/slog"

	"github.com/archlab/patterns/pkg/domain/bank"
	"github.com/archlab/patterns/pkg/eventbus"
	"github.com/archlab/patterns/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides account creation, deposits, withdrawals, transfers and
// the read-side queries.
type Service struct {
	uow         repository.BankUnitOfWork
	accounts    repository.AccountRepository
	projections repository.BalanceProjectionRepository
	bus         eventbus.Bus
	logger      *slog.Logger
}

// NewService creates a Service with the provided collaborators.
func NewService(
	uow repository.BankUnitOfWork,
	accounts repository.AccountRepository,
	projections repository.BalanceProjectionRepository,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:         uow,
		accounts:    accounts,
		projections: projections,
		bus:         bus,
		logger:      logger.With("service", "bank"),
	}
}

// CreateAccount opens an account with the given owner and opening balance
// and publishes the first change event so the projection starts in step.
func (s *Service) CreateAccount(ctx context.Context, owner string, initial decimal.Decimal) (*bank.Account, error) {
	if initial.IsNegative() {
		return nil, bank.ErrNegativeInitialBalance
	}

	var acct *bank.Account
	err := s.uow.Do(ctx, func(accounts repository.AccountRepository) error {
		var err error
		acct, err = accounts.Create(ctx, owner, initial)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created", "account_id", acct.ID, "owner", acct.Owner)
	s.bus.Publish(ctx, bank.NewAccountChanged(acct.ID, acct.Balance))
	return acct, nil
}

// Deposit adds amount to the account's balance and returns the new balance.
func (s *Service) Deposit(ctx context.Context, accountID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, bank.ErrAmountMustBePositive
	}

	var newBalance decimal.Decimal
	err := s.uow.Do(ctx, func(accounts repository.AccountRepository) error {
		acct, err := accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acct == nil {
			return bank.ErrAccountNotFound
		}
		newBalance = acct.Balance.Add(amount)
		return accounts.UpdateBalance(ctx, accountID, newBalance)
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Info("deposit applied",
		"account_id", accountID, "amount", amount, "balance", newBalance)
	s.bus.Publish(ctx, bank.NewAccountChanged(accountID, newBalance))
	return newBalance, nil
}

// Withdraw removes amount from the account's balance and returns the new
// balance. The sufficiency check runs against the balance read inside the
// same unit of work that writes it.
func (s *Service) Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, bank.ErrAmountMustBePositive
	}

	var newBalance decimal.Decimal
	err := s.uow.Do(ctx, func(accounts repository.AccountRepository) error {
		acct, err := accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acct == nil {
			return bank.ErrAccountNotFound
		}
		if acct.Balance.LessThan(amount) {
			return bank.ErrInsufficientFunds
		}
		newBalance = acct.Balance.Sub(amount)
		return accounts.UpdateBalance(ctx, accountID, newBalance)
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Info("withdrawal applied",
		"account_id", accountID, "amount", amount, "balance", newBalance)
	s.bus.Publish(ctx, bank.NewAccountChanged(accountID, newBalance))
	return newBalance, nil
}

// Transfer debits fromID and credits toID inside one transaction. On
// success it publishes the source's change event before the destination's,
// and the projection is updated in the same order.
func (s *Service) Transfer(ctx context.Context, fromID, toID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return bank.ErrAmountMustBePositive
	}

	var newFrom, newTo decimal.Decimal
	err := s.uow.Do(ctx, func(accounts repository.AccountRepository) error {
		from, err := accounts.Get(ctx, fromID)
		if err != nil {
			return err
		}
		if from == nil {
			return bank.ErrSourceAccountNotFound
		}
		to, err := accounts.Get(ctx, toID)
		if err != nil {
			return err
		}
		if to == nil {
			return bank.ErrDestinationAccountNotFound
		}
		if from.Balance.LessThan(amount) {
			return bank.ErrInsufficientFunds
		}

		newFrom = from.Balance.Sub(amount)
		newTo = to.Balance.Add(amount)
		if fromID == toID {
			// Transfer to self nets to zero.
			newFrom = from.Balance
			newTo = from.Balance
		}
		if err := accounts.UpdateBalance(ctx, fromID, newFrom); err != nil {
			return err
		}
		return accounts.UpdateBalance(ctx, toID, newTo)
	})
	if err != nil {
		return err
	}

	s.logger.Info("transfer applied",
		"from_id", fromID, "to_id", toID, "amount", amount)
	s.bus.Publish(ctx, bank.NewAccountChanged(fromID, newFrom))
	s.bus.Publish(ctx, bank.NewAccountChanged(toID, newTo))
	return nil
}

// GetAccount returns the account or ErrAccountNotFound.
func (s *Service) GetAccount(ctx context.Context, accountID uint) (*bank.Account, error) {
	acct, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, bank.ErrAccountNotFound
	}
	return acct, nil
}

// ListAccounts returns all accounts ordered by id.
func (s *Service) ListAccounts(ctx context.Context) ([]*bank.Account, error) {
	return s.accounts.List(ctx)
}

// BalanceOf reads the denormalized balance from the projection table, not
// the write model. Returns ErrAccountNotFound when no row exists.
func (s *Service) BalanceOf(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	balance, err := s.projections.Get(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if balance == nil {
		return decimal.Zero, bank.ErrAccountNotFound
	}
	return *balance, nil
}
