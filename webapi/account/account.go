// Package account exposes the client-facing account endpoints.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/middleware"
	"github.com/ksuvorov/bankledger/webapi/common"
)

// Routes registers the account endpoints. All of them require an
// authenticated CLIENT.
func Routes(r fiber.Router, a *app.App) {
	grp := r.Group("/account",
		middleware.JwtProtected(a.Config.Jwt),
		middleware.RequireRole(domain.RoleClient),
	)
	grp.Post("/", CreateAccount(a))
	grp.Get("/:id/balance", GetBalance(a))
}

// CreateAccount handles POST /account.
func CreateAccount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		input := common.BindAndValidate[CreateAccountRequest](c, a.Logger)
		if input == nil {
			return nil
		}
		acct, err := a.AccountService.CreateAccount(c.UserContext(), principal.ClientID, input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "account created", acct)
	}
}

// GetBalance handles GET /account/:id/balance. Only the owner sees the
// balance; foreign accounts answer 404.
func GetBalance(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		balance, err := a.AccountService.GetBalance(c.UserContext(), principal.ClientID, accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "balance", BalanceResponse{
			AccountID: accountID.String(),
			Balance:   balance,
		})
	}
}
