// Package auth exposes login and the authenticated profile.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/pkg/middleware"
	"github.com/ksuvorov/bankledger/webapi/common"
)

// Routes registers the auth endpoints.
func Routes(r fiber.Router, a *app.App) {
	grp := r.Group("/auth")
	grp.Post("/login", Login(a))
	grp.Get("/profile", middleware.JwtProtected(a.Config.Jwt), Profile(a))
}

// Login handles POST /auth/login.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[LoginRequest](c, a.Logger)
		if input == nil {
			return nil
		}
		token, err := a.AuthService.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "login successful",
			LoginResponse{AccessToken: token})
	}
}

// Profile handles GET /auth/profile.
func Profile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := common.CurrentPrincipal(c, a.AuthService)
		if err != nil {
			return common.ProblemDetailsJSON(c, "unauthorized", err)
		}
		email, err := a.AuthService.Profile(c.UserContext(), principal.ClientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "failed to load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "profile", ProfileResponse{
			ClientID: principal.ClientID.String(),
			Email:    email,
			Role:     string(principal.Role),
		})
	}
}
