// Package client exposes client registration.
package client

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/webapi/common"
)

// Routes registers the client endpoints.
func Routes(r fiber.Router, a *app.App) {
	r.Post("/client", Register(a))
}

// Register handles POST /client. Registration is open; every new client gets
// the CLIENT role.
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[RegisterRequest](c, a.Logger)
		if input == nil {
			return nil
		}
		created, err := a.AuthService.Register(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to register client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "client registered", created)
	}
}
