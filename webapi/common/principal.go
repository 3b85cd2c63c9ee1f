package common

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/service/auth"
)

// CurrentPrincipal extracts the authenticated principal stored by the JWT
// middleware.
func CurrentPrincipal(c *fiber.Ctx, svc *auth.Service) (auth.Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return auth.Principal{}, domain.ErrUnauthorized
	}
	return svc.CurrentPrincipal(token)
}
