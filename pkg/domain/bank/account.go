// Package bank holds the bank service's domain types and invariants.
package bank

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when no account exists for the given id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSourceAccountNotFound is returned by a transfer when the debited
	// account does not exist.
	ErrSourceAccountNotFound = errors.New("source account not found")

	// ErrDestinationAccountNotFound is returned by a transfer when the
	// credited account does not exist.
	ErrDestinationAccountNotFound = errors.New("destination account not found")

	// ErrAmountMustBePositive is returned when a deposit, withdrawal or
	// transfer amount is zero or negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrNegativeInitialBalance is returned when an account is created with
	// a negative opening balance.
	ErrNegativeInitialBalance = errors.New("initial balance must not be negative")

	// ErrInsufficientFunds is returned when a withdrawal or transfer would
	// drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is the write-model entity.
//
// Invariants:
// - The balance is never driven negative by a withdrawal or transfer.
// - The id is assigned by storage on creation and never changes.
type Account struct {
	ID      uint
	Owner   string
	Balance decimal.Decimal
}

// EventTypeAccountChanged tags every balance mutation published on the bus.
const EventTypeAccountChanged = "bank.account.changed"

// AccountChanged is published after each successful write-model mutation.
// The balances projection consumes it to keep the read model in step.
type AccountChanged struct {
	EventID   uuid.UUID
	AccountID uint
	Balance   decimal.Decimal
}

// NewAccountChanged builds an AccountChanged with a fresh envelope id.
func NewAccountChanged(accountID uint, balance decimal.Decimal) AccountChanged {
	return AccountChanged{
		EventID:   uuid.New(),
		AccountID: accountID,
		Balance:   balance,
	}
}

// Type implements the bus event contract.
func (AccountChanged) Type() string { return EventTypeAccountChanged }
