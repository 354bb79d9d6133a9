package controllers

import (
	"menu-catalog/controllers/helpers"
	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SectionController struct {
	DB         *gorm.DB
	catalog    *repositories.CatalogRepository
	visibility *repositories.VisibilityRepository
}

func NewSectionController(DB *gorm.DB) *SectionController {
	return &SectionController{
		DB:         DB,
		catalog:    repositories.NewCatalogRepository(DB),
		visibility: repositories.NewVisibilityRepository(DB),
	}
}

func (c *SectionController) CreateSection(ctx *fiber.Ctx) error {
	var sectionInput struct {
		Title       string `json:"title" validate:"required,min=2"`
		Description string `json:"description"`
		Locale      string `json:"locale" validate:"required,min=2"`
	}
	if err := ctx.BodyParser(&sectionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(sectionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	section, err := c.catalog.CreateSection(tenantID, actor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := c.catalog.UpsertTranslation(tenantID, models.EntitySection, section.ID, sectionInput.Locale, models.FieldName, sectionInput.Title); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if sectionInput.Description != "" {
		if _, err := c.catalog.UpsertTranslation(tenantID, models.EntitySection, section.ID, sectionInput.Locale, models.FieldDescription, sectionInput.Description); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "section.create", models.EntitySection, section.ID, nil, section)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Section created successfully", "data": section})
}

func (c *SectionController) GetAllSections(ctx *fiber.Ctx) error {
	var sections []models.Section
	err := c.DB.Where("tenant_id = ?", tenantFromCtx(ctx)).Find(&sections).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sections})
}

func (c *SectionController) GetSectionByID(ctx *fiber.Ctx) error {
	sectionID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	section, err := c.catalog.GetSection(tenantFromCtx(ctx), uint(sectionID))
	if err != nil {
		return repoError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": section})
}

// SetSectionActive cascades across every menu referencing the section; see
// VisibilityRepository for the scope rules.
func (c *SectionController) SetSectionActive(ctx *fiber.Ctx) error {
	sectionID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
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

	result, err := c.visibility.SetSectionActive(tenantID, uint(sectionID), *body.IsActive, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "section.set_active", models.EntitySection, result.Section.ID,
		fiber.Map{"is_active": !result.Section.IsActive}, fiber.Map{"is_active": result.Section.IsActive})

	return ctx.JSON(fiber.Map{"success": true, "message": "Section updated successfully", "data": result})
}

func (c *SectionController) UpsertTranslation(ctx *fiber.Ctx) error {
	sectionID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		Locale string `json:"locale" validate:"required,min=2"`
		Field  string `json:"field" validate:"required,oneof=name description"`
		Text   string `json:"text" validate:"required"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	if _, err := c.catalog.GetSection(tenantID, uint(sectionID)); err != nil {
		return repoError(ctx, err)
	}

	row, err := c.catalog.UpsertTranslation(tenantID, models.EntitySection, uint(sectionID), body.Locale, body.Field, body.Text)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Translation saved successfully", "data": row})
}

func (c *SectionController) DeleteSection(ctx *fiber.Ctx) error {
	sectionID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	if err := c.catalog.DeleteSection(tenantID, uint(sectionID)); err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actorFromCtx(ctx)), "section.delete", models.EntitySection, uint(sectionID), nil, nil)

	return ctx.JSON(fiber.Map{"success": true, "message": "Section deleted successfully"})
}
