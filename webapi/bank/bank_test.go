package bank_test

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/archlab/patterns/infra/database"
	infraeventbus "github.com/archlab/patterns/infra/eventbus"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/pkg/projection"
	banksvc "github.com/archlab/patterns/pkg/service/bank"
	"github.com/archlab/patterns/webapi/bank"
	"github.com/archlab/patterns/webapi/testutil"
)

type BankSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *BankSuite) SetupTest() {
	db, err := database.Open(filepath.Join(s.T().TempDir(), "bank.db"))
	s.Require().NoError(err)
	s.Require().NoError(infrarepo.MigrateBank(db))

	logger := slog.Default()
	bus := infraeventbus.NewMemory(logger)
	projections := infrarepo.NewBalanceProjectionRepository(db)
	bus.Subscribe(projection.NewBalanceProjector(projections, logger).Handle)

	svc := banksvc.NewService(
		infrarepo.NewBankUoW(db),
		infrarepo.NewAccountRepository(db),
		projections,
		bus,
		logger,
	)
	s.app = bank.NewApp(svc)
}

func TestBankSuite(t *testing.T) {
	suite.Run(t, new(BankSuite))
}

func (s *BankSuite) createAccount(owner string) float64 {
	resp := testutil.MakeRequest(s.T(), s.app, "POST", "/accounts",
		fmt.Sprintf(`{"owner":%q}`, owner))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := testutil.DecodeData(s.T(), resp)
	id, ok := data["id"].(float64)
	s.Require().True(ok)
	return id
}

func (s *BankSuite) TestCreateAndReadBalance() {
	id := s.createAccount("Alice")

	resp := testutil.MakeRequest(s.T(), s.app, "POST",
		fmt.Sprintf("/accounts/%.0f/deposit", id), `{"amount":100}`)
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutil.DecodeData(s.T(), resp)
	s.Assert().Equal("100", data["balance"])

	resp = testutil.MakeRequest(s.T(), s.app, "GET",
		fmt.Sprintf("/balances/%.0f", id), "")
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
	data = testutil.DecodeData(s.T(), resp)
	s.Assert().Equal("100", data["balance"])
}

func (s *BankSuite) TestTransferScenario() {
	a := s.createAccount("A")
	b := s.createAccount("B")

	resp := testutil.MakeRequest(s.T(), s.app, "POST",
		fmt.Sprintf("/accounts/%.0f/deposit", a), `{"amount":50}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutil.MakeRequest(s.T(), s.app, "POST", "/transfer",
		fmt.Sprintf(`{"from_id":%.0f,"to_id":%.0f,"amount":20}`, a, b))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/balances/%.0f", a), "")
	s.Assert().Equal("30", testutil.DecodeData(s.T(), resp)["balance"])
	resp = testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/balances/%.0f", b), "")
	s.Assert().Equal("20", testutil.DecodeData(s.T(), resp)["balance"])
}

func (s *BankSuite) TestDepositValidation() {
	id := s.createAccount("Alice")

	s.Run("non-positive amount", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "POST",
			fmt.Sprintf("/accounts/%.0f/deposit", id), `{"amount":-5}`)
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("missing account", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "POST",
			"/accounts/999/deposit", `{"amount":5}`)
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("malformed body", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "POST",
			fmt.Sprintf("/accounts/%.0f/deposit", id), `{not json`)
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *BankSuite) TestWithdrawInsufficientFunds() {
	id := s.createAccount("Alice")

	resp := testutil.MakeRequest(s.T(), s.app, "POST",
		fmt.Sprintf("/accounts/%.0f/withdraw", id), `{"amount":10}`)
	s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/balances/%.0f", id), "")
	s.Assert().Equal("0", testutil.DecodeData(s.T(), resp)["balance"])
}

func (s *BankSuite) TestTransferMissingAccount() {
	a := s.createAccount("A")

	resp := testutil.MakeRequest(s.T(), s.app, "POST", "/transfer",
		fmt.Sprintf(`{"from_id":%.0f,"to_id":999,"amount":1}`, a))
	s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *BankSuite) TestGetAccountNotFound() {
	resp := testutil.MakeRequest(s.T(), s.app, "GET", "/accounts/999", "")
	s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *BankSuite) TestListAccounts() {
	s.createAccount("A")
	s.createAccount("B")

	resp := testutil.MakeRequest(s.T(), s.app, "GET", "/accounts", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Assert().Len(testutil.DecodeList(s.T(), resp), 2)
}
