// Package admin exposes the back-office endpoints: accounts of any client,
// the full transaction log and account freezing.
package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/middleware"
	"github.com/ksuvorov/bankledger/webapi/common"
)

// Routes registers the admin endpoints, ADMIN role only.
func Routes(r fiber.Router, a *app.App) {
	grp := r.Group("/admin",
		middleware.JwtProtected(a.Config.Jwt),
		middleware.RequireRole(domain.RoleAdmin),
	)
	grp.Get("/accounts/:clientId", ListClientAccounts(a))
	grp.Get("/transactions", ListTransactions(a))
	grp.Patch("/accounts/:accountId/status", SetAccountStatus(a))
}

// ListClientAccounts handles GET /admin/accounts/:clientId.
func ListClientAccounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID, err := uuid.Parse(c.Params("clientId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid client id", err, fiber.StatusBadRequest)
		}
		accts, err := a.AccountService.ListAccounts(c.UserContext(), clientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "accounts", accts)
	}
}

// ListTransactions handles GET /admin/transactions. The order query parameter
// takes comma-separated field:direction pairs, e.g.
// "type:asc,created_at:desc".
func ListTransactions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sort := parseSort(c.Query("order"))
		recs, err := a.Ledger.ListAllTransactions(c.UserContext(), sort)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "transactions", recs)
	}
}

// SetAccountStatus handles PATCH /admin/accounts/:accountId/status.
func SetAccountStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "invalid account id", err, fiber.StatusBadRequest)
		}
		input := common.BindAndValidate[StatusRequest](c, a.Logger)
		if input == nil {
			return nil
		}
		if err := a.AccountService.SetAccountActive(c.UserContext(), accountID, *input.Active); err != nil {
			return common.ProblemDetailsJSON(c, "failed to update account status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "account status updated", fiber.Map{
			"accountId": accountID.String(),
			"isActive":  *input.Active,
		})
	}
}

func parseSort(raw string) dto.SortSpec {
	if raw == "" {
		return nil
	}
	var sort dto.SortSpec
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, direction, _ := strings.Cut(part, ":")
		sort = append(sort, dto.SortOrder{
			Field:     strings.TrimSpace(field),
			Direction: strings.TrimSpace(direction),
		})
	}
	return sort
}
