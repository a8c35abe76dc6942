package middleware

import (
	"strings"

	"patientgift/config"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenLocal is the c.Locals key holding the accepted admin token.
const AdminTokenLocal = "admin_token"

// TokenSource extracts a candidate admin token from a request.
type TokenSource func(c *fiber.Ctx) string

func QueryToken(c *fiber.Ctx) string  { return c.Query("token") }
func HeaderToken(c *fiber.Ctx) string { return c.Get("X-Admin-Token") }
func FormToken(c *fiber.Ctx) string   { return c.FormValue("token") }

// AdminGate guards the administrative routes with an optional shared secret.
type AdminGate struct {
	token   string
	sources []TokenSource
}

// NewAdminGate builds a gate for token. An empty token leaves the routes open.
func NewAdminGate(token string) *AdminGate {
	return &AdminGate{
		token:   strings.TrimSpace(token),
		sources: []TokenSource{QueryToken, HeaderToken, FormToken},
	}
}

func (g *AdminGate) Enabled() bool {
	return g.token != ""
}

// Provided returns the first non-empty token among the sources, in order.
func (g *AdminGate) Provided(c *fiber.Ctx) string {
	for _, src := range g.sources {
		if v := strings.TrimSpace(src(c)); v != "" {
			return v
		}
	}
	return ""
}

func (g *AdminGate) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Enabled() {
			c.Locals(AdminTokenLocal, "")
			return c.Next()
		}

		if g.Provided(c) != g.token {
			config.PrintLogInfo(nil, fiber.StatusForbidden, "AdminGate")
			return fiber.NewError(fiber.StatusForbidden, "Admin token required")
		}

		c.Locals(AdminTokenLocal, g.token)
		return c.Next()
	}
}

// AdminToken returns the token accepted by the gate for this request.
func AdminToken(c *fiber.Ctx) string {
	v, _ := c.Locals(AdminTokenLocal).(string)
	return v
}
