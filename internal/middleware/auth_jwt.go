package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/internal/auth"
)

const AccessTokenCookie = "access_token"

// JWTUidOnly extracts the session token (cookie first, then Authorization
// bearer), verifies it, and puts the user id hex into c.Locals("user_id").
// Requests without a token pass through anonymous; guarding is RequireAuth's
// job.
func JWTUidOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(AccessTokenCookie)
		if tokenStr == "" {
			header := c.Get("Authorization")
			if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
				return c.Next()
			}
			tokenStr = strings.TrimSpace(header[7:])
		}

		uid, err := auth.Parse(secret, tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}

// RequireAuth rejects requests that reached the route without a verified
// session. It insists on a well-formed user id so handlers downstream can
// parse c.Locals("user_id") without re-checking.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if _, err := bson.ObjectIDFromHex(uid); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
