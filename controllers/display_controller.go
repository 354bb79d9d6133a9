package controllers

import (
	"errors"

	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DisplayController is the guest-facing read path: it renders the menus
// currently live at a location, enabled lines only, in the requested locale.
type DisplayController struct {
	DB     *gorm.DB
	render *repositories.RenderRepository
}

func NewDisplayController(DB *gorm.DB) *DisplayController {
	return &DisplayController{
		DB:     DB,
		render: repositories.NewRenderRepository(DB),
	}
}

func (c *DisplayController) GetLocationMenus(ctx *fiber.Ctx) error {
	locationCode := ctx.Params("locationCode")
	locale := ctx.Query("locale")

	var location models.Location
	err := c.DB.Where("code = ? AND is_active = ?", locationCode, true).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	menus, err := c.render.RenderMenu(location.TenantID, location.ID, locale)
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"location": fiber.Map{"code": location.Code, "name": location.Name},
			"menus":    menus,
		},
	})
}
