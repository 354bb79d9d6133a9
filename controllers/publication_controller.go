package controllers

import (
	"menu-catalog/controllers/helpers"
	"menu-catalog/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicationController exposes the publication lifecycle. Note the two
// distinct activation paths: Activate keeps sibling menus live, SetCurrent
// with true retires them.
type PublicationController struct {
	DB           *gorm.DB
	publications *repositories.PublicationRepository
}

func NewPublicationController(DB *gorm.DB) *PublicationController {
	return &PublicationController{
		DB:           DB,
		publications: repositories.NewPublicationRepository(DB),
	}
}

func (c *PublicationController) Activate(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		MenuID uint `json:"menu_id" validate:"required"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	pub, err := c.publications.Activate(tenantID, uint(locationID), body.MenuID, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "publication.activate", "menu_publication", pub.ID, nil, pub)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Menu activated successfully", "data": pub})
}

func (c *PublicationController) SetCurrent(ctx *fiber.Ctx) error {
	publicationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		IsCurrent *bool `json:"is_current" validate:"required"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	pub, err := c.publications.SetCurrent(tenantID, uint(publicationID), *body.IsCurrent, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "publication.set_current", "menu_publication", pub.ID,
		nil, fiber.Map{"is_current": pub.IsCurrent})

	return ctx.JSON(fiber.Map{"success": true, "message": "Publication updated successfully", "data": pub})
}

func (c *PublicationController) Deactivate(ctx *fiber.Ctx) error {
	publicationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	pub, err := c.publications.Deactivate(tenantID, uint(publicationID), actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "publication.deactivate", "menu_publication", pub.ID, nil, nil)

	return ctx.JSON(fiber.Map{"success": true, "message": "Publication deactivated successfully", "data": pub})
}

func (c *PublicationController) GetLocationPublications(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	pubs, err := c.publications.CurrentPublications(tenantFromCtx(ctx), uint(locationID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": pubs})
}
