package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// isJSONRequest separates the API flows from the browser form flows sharing
// a route.
func isJSONRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}
