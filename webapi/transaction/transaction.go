// Package transaction exposes the money-moving endpoints and the client
// transaction listings.
package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/middleware"
	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/ksuvorov/bankledger/webapi/common"
)

// Routes registers the transaction endpoints. All of them require an
// authenticated CLIENT.
func Routes(r fiber.Router, a *app.App) {
	grp := r.Group("/transaction",
		middleware.JwtProtected(a.Config.Jwt),
		middleware.RequireRole(domain.RoleClient),
	)
	grp.Get("/", List(a))
	grp.Get("/account/:accountId", ListByAccount(a))
	grp.Post("/deposit/:accountId", Deposit(a))
	grp.Post("/withdraw/:accountId", Withdraw(a))
	grp.Post("/transfer/:fromAccountId/:toAccountId", Transfer(a))
	grp.Post("/p2p/:toClientId/:fromAccountId/:toAccountId", P2PTransfer(a))
}

// Deposit handles POST /transaction/deposit/:accountId.
func Deposit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		amount, ok := bindAmount(c, a)
		if !ok {
			return nil
		}
		rec, err := a.Ledger.Deposit(c.UserContext(), principal.ClientID, accountID, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "deposit successful", rec)
	}
}

// Withdraw handles POST /transaction/withdraw/:accountId.
func Withdraw(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		amount, ok := bindAmount(c, a)
		if !ok {
			return nil
		}
		rec, err := a.Ledger.Withdraw(c.UserContext(), principal.ClientID, accountID, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "withdrawal failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "withdrawal successful", rec)
	}
}

// Transfer handles POST /transaction/transfer/:fromAccountId/:toAccountId.
// Both accounts must belong to the authenticated client.
func Transfer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		fromID, err := uuid.Parse(c.Params("fromAccountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		toID, err := uuid.Parse(c.Params("toAccountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		amount, ok := bindAmount(c, a)
		if !ok {
			return nil
		}
		rec, err := a.Ledger.Transfer(c.UserContext(), principal.ClientID, fromID, toID, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "transfer successful", rec)
	}
}

// P2PTransfer handles POST /transaction/p2p/:toClientId/:fromAccountId/:toAccountId.
// The source account belongs to the caller, the destination to the named
// recipient client.
func P2PTransfer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		toClientID, err := uuid.Parse(c.Params("toClientId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid client id", err, fiber.StatusBadRequest)
		}
		fromID, err := uuid.Parse(c.Params("fromAccountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		toID, err := uuid.Parse(c.Params("toAccountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		amount, ok := bindAmount(c, a)
		if !ok {
			return nil
		}
		rec, err := a.Ledger.P2PTransfer(
			c.UserContext(), principal.ClientID, toClientID, fromID, toID, amount,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "p2p transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "p2p transfer successful", rec)
	}
}

// List handles GET /transaction.
func List(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		recs, err := a.Ledger.ListTransactions(c.UserContext(), principal.ClientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "transactions", recs)
	}
}

// ListByAccount handles GET /transaction/account/:accountId.
func ListByAccount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		recs, err := a.Ledger.ListAccountTransactions(c.UserContext(), principal.ClientID, accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "transactions", recs)
	}
}

func bindAmount(c *fiber.Ctx, a *app.App) (money.Amount, bool) {
	input := common.BindAndValidate[AmountRequest](c, a.Logger)
	if input == nil {
		return 0, false
	}
	amount, err := money.ParsePositive(input.Amount)
	if err != nil {
		_ = common.ProblemDetailsJSON(c, "invalid amount", err)
		return 0, false
	}
	return amount, true
}
