package bank

import (
	domain "github.com/archlab/patterns/pkg/domain/bank"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest opens an account. The initial balance is optional
// and defaults to zero.
type CreateAccountRequest struct {
	Owner          string          `json:"owner" validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// AmountRequest carries the amount for deposits and withdrawals.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// TransferRequest moves amount between two accounts.
type TransferRequest struct {
	FromID uint            `json:"from_id" validate:"required"`
	ToID   uint            `json:"to_id" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	ID      uint            `json:"id"`
	Owner   string          `json:"owner"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceResponse is the wire shape of a projected balance.
type BalanceResponse struct {
	AccountID uint            `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Owner: a.Owner, Balance: a.Balance}
}
