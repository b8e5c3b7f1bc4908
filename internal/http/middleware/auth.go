package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/service"
)

// ClaimsLocalKey is the key used to store verified token claims in Fiber's
// context locals.
const ClaimsLocalKey = "auth_claims"

// RequireAuth verifies the Bearer token on every request and stores the
// claims in context locals for downstream handlers.
func RequireAuth(tokens *service.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the company admin flag.
// Must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals(ClaimsLocalKey).(*service.Claims)
		if claims == nil || !claims.IsCompanyAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// RequireApprover rejects requests whose token has neither the approver nor
// the admin flag. Must run after RequireAuth.
func RequireApprover() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals(ClaimsLocalKey).(*service.Claims)
		if claims == nil || (!claims.IsApprover && !claims.IsCompanyAdmin) {
			return fiber.NewError(fiber.StatusForbidden, "approver access required")
		}
		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims stored by RequireAuth, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *service.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*service.Claims)
	return claims
}
