package delivery

import (
	"net/http"

	"patientgift/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// NewSystemDelivery registers the root redirect, the liveness probe and the
// embedded stylesheet.
func NewSystemDelivery(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin", fiber.StatusFound)
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString("ok")
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(views.Static),
		PathPrefix: "static",
		MaxAge:     3600,
	}))
}
