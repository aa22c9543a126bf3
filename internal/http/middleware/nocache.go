package middleware

import "github.com/gofiber/fiber/v2"

// NoCache marks every response as uncacheable by browsers and shared caches.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "max-age=0, no-cache, no-store, must-revalidate, private")
		c.Set(fiber.HeaderExpires, "0")
		c.Set(fiber.HeaderPragma, "no-cache")
		return c.Next()
	}
}
