package httpapi

import (
	"strings"

	"github.com/dmaslov/passport/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

const claimsContextKey = "claims"

// requireAuth rejects requests without a valid bearer token and stashes the
// parsed claims for the handler.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "authorization header is required",
		})
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid authorization header format",
		})
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid token",
		})
	}

	c.Locals(claimsContextKey, claims)
	return c.Next()
}

func claimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsContextKey).(*auth.Claims)
	return claims
}
