package middleware

import "github.com/gofiber/fiber/v2"

// UserIDKey is the request-local key holding the caller identity.
const UserIDKey = "userID"

// Identity resolves the caller for every request. There is no session
// surface; the configured id (the seeded user by default) is the
// caller for each request, and handlers read it from request locals
// rather than hardcoding it.
func Identity(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
