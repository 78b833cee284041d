package nocache

import "github.com/gofiber/fiber/v2"

// New returns a middleware that forces clients to revalidate on every
// request. The headers are set after the handler chain runs so they end up
// on every response the server writes, including error responses and
// directory listings.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return err
	}
}
