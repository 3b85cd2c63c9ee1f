// Package webapi assembles the fiber application from the handler packages.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/webapi/account"
	"github.com/ksuvorov/bankledger/webapi/admin"
	"github.com/ksuvorov/bankledger/webapi/auth"
	"github.com/ksuvorov/bankledger/webapi/client"
	"github.com/ksuvorov/bankledger/webapi/common"
	"github.com/ksuvorov/bankledger/webapi/transaction"
)

// SetupApp builds the fiber app with middleware and all route groups.
func SetupApp(a *app.App) *fiber.App {
	fa := fiber.New(fiber.Config{
		AppName: "bankledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "internal server error", err, status)
		},
	})

	fa.Use(recoverer.New())
	fa.Use(fiberlogger.New())
	fa.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "too many requests", nil,
				"rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))

	fa.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	client.Routes(fa, a)
	auth.Routes(fa, a)
	account.Routes(fa, a)
	transaction.Routes(fa, a)
	admin.Routes(fa, a)

	return fa
}
