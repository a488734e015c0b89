package handlers

import "github.com/gofiber/fiber/v2"

// Whoami echoes the authenticated user id, or null for anonymous requests.
// Handy check for token wiring.
func Whoami(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": c.Locals("user_id"),
	})
}
