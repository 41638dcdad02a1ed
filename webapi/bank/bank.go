// Package bank exposes the bank service over HTTP.
package bank

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	domain "github.com/archlab/patterns/pkg/domain/bank"
	banksvc "github.com/archlab/patterns/pkg/service/bank"
	"github.com/archlab/patterns/webapi/common"
)

// Routes registers the bank endpoints:
//
//   - POST  /accounts               : open an account
//   - GET   /accounts               : list accounts
//   - GET   /accounts/:id           : fetch one account
//   - POST  /accounts/:id/deposit   : deposit into an account
//   - POST  /accounts/:id/withdraw  : withdraw from an account
//   - POST  /transfer               : move funds between two accounts
//   - GET   /balances/:id           : read the projected balance
func Routes(app *fiber.App, svc *banksvc.Service) {
	app.Post("/accounts", CreateAccount(svc))
	app.Get("/accounts", ListAccounts(svc))
	app.Get("/accounts/:id", GetAccount(svc))
	app.Post("/accounts/:id/deposit", Deposit(svc))
	app.Post("/accounts/:id/withdraw", Withdraw(svc))
	app.Post("/transfer", Transfer(svc))
	app.Get("/balances/:id", GetBalance(svc))
}

// CreateAccount handles POST /accounts.
func CreateAccount(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		acct, err := svc.CreateAccount(c.UserContext(), input.Owner, input.InitialBalance)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountResponse(acct))
	}
}

// ListAccounts handles GET /accounts.
func ListAccounts(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.ListAccounts(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts",
			lo.Map(accounts, func(a *domain.Account, _ int) AccountResponse {
				return toAccountResponse(a)
			}))
	}
}

// GetAccount handles GET /accounts/:id.
func GetAccount(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		acct, err := svc.GetAccount(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", toAccountResponse(acct))
	}
}

// Deposit handles POST /accounts/:id/deposit.
func Deposit(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		balance, err := svc.Deposit(c.UserContext(), id, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "Deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit applied",
			BalanceResponse{AccountID: id, Balance: balance})
	}
}

// Withdraw handles POST /accounts/:id/withdraw.
func Withdraw(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		balance, err := svc.Withdraw(c.UserContext(), id, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "Withdrawal failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal applied",
			BalanceResponse{AccountID: id, Balance: balance})
	}
}

// Transfer handles POST /transfer.
func Transfer(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		if err := svc.Transfer(c.UserContext(), input.FromID, input.ToID, input.Amount); err != nil {
			return common.DomainErrorJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer applied", nil)
	}
}

// GetBalance handles GET /balances/:id, reading the denormalized read model.
func GetBalance(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		balance, err := svc.BalanceOf(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to read balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance",
			BalanceResponse{AccountID: id, Balance: balance})
	}
}
