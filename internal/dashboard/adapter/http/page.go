package http

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed web/index.html
var dashboardHTML []byte

// DashboardPage serves the embedded browser page that renders the catalog.
func (h *CollectionHandler) DashboardPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(dashboardHTML)
}
