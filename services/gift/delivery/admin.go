package delivery

import (
	"errors"
	"fmt"

	"patientgift/config"
	"patientgift/domain"
	"patientgift/middleware"
	"patientgift/services/gift/render"

	"github.com/gofiber/fiber/v2"
)

const maxAPIListLimit = 500

type adminHandler struct {
	guc       domain.GiftUseCase
	gate      *middleware.AdminGate
	listLimit int
}

func NewAdminDelivery(app *fiber.App, uc domain.GiftUseCase, gate *middleware.AdminGate, cfg config.App) {
	handler := &adminHandler{
		guc:       uc,
		gate:      gate,
		listLimit: cfg.AdminListLimit,
	}

	route := app.Group("/admin", gate.Handler())
	route.Get("/", handler.AdminPage)
	route.Post("/create", middleware.CreateRateLimiter(cfg.CreateRateLimit), handler.CreateGift)
	route.Get("/api/gifts", handler.ListGifts)
}

func (ah *adminHandler) AdminPage(c *fiber.Ctx) error {
	actor := "admin"

	gifts, err := ah.guc.ListRecentGifts(c.UserContext(), ah.listLimit)
	if err != nil {
		config.PrintLogInfo(&actor, fiber.StatusInternalServerError, "AdminPage")
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to list gifts: %v", err))
	}

	config.PrintLogInfo(&actor, fiber.StatusOK, "AdminPage")
	return c.Render("admin", fiber.Map{
		"AppName":       config.GetAppName(),
		"Gifts":         gifts,
		"AdminToken":    middleware.AdminToken(c),
		"TokenRequired": ah.gate.Enabled(),
	})
}

func (ah *adminHandler) CreateGift(c *fiber.Ctx) error {
	actor := "admin"

	var payload domain.CreateGiftRequest
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&actor, fiber.StatusBadRequest, "CreateGift")
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid form: %v", err))
	}

	gift, err := ah.guc.CreateGift(c.UserContext(), &payload)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			config.PrintLogInfo(&actor, fiber.StatusBadRequest, "CreateGift")
			return fiber.NewError(fiber.StatusBadRequest, vErr.Reason)
		}
		config.PrintLogInfo(&actor, fiber.StatusInternalServerError, "CreateGift")
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to create gift: %v", err))
	}

	config.PrintLogInfo(&actor, fiber.StatusSeeOther, "CreateGift")
	target := render.LandingPath(gift.Slug) + "/print" + render.TokenQuery(middleware.AdminToken(c))
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (ah *adminHandler) ListGifts(c *fiber.Ctx) error {
	actor := "admin"

	limit := c.QueryInt("limit", ah.listLimit)
	if limit <= 0 {
		limit = ah.listLimit
	}
	if limit > maxAPIListLimit {
		limit = maxAPIListLimit
	}

	gifts, err := ah.guc.ListRecentGifts(c.UserContext(), limit)
	if err != nil {
		config.PrintLogInfo(&actor, fiber.StatusInternalServerError, "ListGifts")
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to list gifts: %v", err))
	}

	config.PrintLogInfo(&actor, fiber.StatusOK, "ListGifts")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Gifts retrieved successfully",
		"data":    gifts,
	})
}
