package delivery

import (
	"fmt"
	"html/template"
	"strings"

	"patientgift/config"
	"patientgift/domain"
	"patientgift/services/gift/render"

	"github.com/gofiber/fiber/v2"
)

const qrPNGSize = 512

type giftHandler struct {
	guc     domain.GiftUseCase
	baseURL string
}

// NewGiftDelivery registers the public pages of a gift. An empty baseURL means
// links are built from the request origin.
func NewGiftDelivery(app *fiber.App, uc domain.GiftUseCase, baseURL string) {
	handler := &giftHandler{
		guc:     uc,
		baseURL: baseURL,
	}

	route := app.Group("/g")
	route.Get("/:slug", handler.Landing)
	route.Get("/:slug/print", handler.PrintCard)
	route.Get("/:slug/qr.svg", handler.QRCodeSVG)
	route.Get("/:slug/qr.png", handler.QRCodePNG)
	route.Get("/:slug/tag.scad", handler.TagSCAD)
}

func (gh *giftHandler) origin(c *fiber.Ctx) string {
	if gh.baseURL != "" {
		return gh.baseURL
	}
	return c.BaseURL()
}

func (gh *giftHandler) lookup(c *fiber.Ctx, functionName string) (*domain.Gift, error) {
	gift, err := gh.guc.GetGiftBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, functionName)
		return nil, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to load gift: %v", err))
	}
	if gift == nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, functionName)
		return nil, fiber.NewError(fiber.StatusNotFound, "Not found")
	}
	return gift, nil
}

func (gh *giftHandler) Landing(c *fiber.Ctx) error {
	gift, err := gh.lookup(c, "Landing")
	if err != nil {
		return err
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "Landing")
	return c.Render("landing", fiber.Map{
		"AppName":    config.GetAppName(),
		"Gift":       gift,
		"LandingURL": render.PublicURL(gh.origin(c), gift.Slug),
	})
}

func (gh *giftHandler) PrintCard(c *fiber.Ctx) error {
	gift, err := gh.lookup(c, "PrintCard")
	if err != nil {
		return err
	}

	landingURL := render.PublicURL(gh.origin(c), gift.Slug)
	qr, err := render.QRCodeSVG(landingURL)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "PrintCard")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "PrintCard")
	// The SVG is built from QR modules only, no user text reaches it.
	return c.Render("print", fiber.Map{
		"AppName":    config.GetAppName(),
		"Gift":       gift,
		"LandingURL": landingURL,
		"QRSVG":      template.HTML(qr),
		"AdminToken": strings.TrimSpace(c.Query("token")),
	})
}

func (gh *giftHandler) QRCodeSVG(c *fiber.Ctx) error {
	gift, err := gh.lookup(c, "QRCodeSVG")
	if err != nil {
		return err
	}

	qr, err := render.QRCodeSVG(render.PublicURL(gh.origin(c), gift.Slug))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "QRCodeSVG")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// The image points at one patient's page; keep it out of shared caches.
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentType, "image/svg+xml")

	config.PrintLogInfo(nil, fiber.StatusOK, "QRCodeSVG")
	return c.Send(qr)
}

func (gh *giftHandler) QRCodePNG(c *fiber.Ctx) error {
	gift, err := gh.lookup(c, "QRCodePNG")
	if err != nil {
		return err
	}

	qr, err := render.QRCodePNG(render.PublicURL(gh.origin(c), gift.Slug), qrPNGSize)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "QRCodePNG")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentType, "image/png")

	config.PrintLogInfo(nil, fiber.StatusOK, "QRCodePNG")
	return c.Send(qr)
}

func (gh *giftHandler) TagSCAD(c *fiber.Ctx) error {
	gift, err := gh.lookup(c, "TagSCAD")
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=gift-%s.scad", gift.Slug))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")

	config.PrintLogInfo(nil, fiber.StatusOK, "TagSCAD")
	return c.Send(render.ModelScript(gift))
}
