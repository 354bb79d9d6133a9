package controllers

import (
	"fmt"

	"menu-catalog/controllers/helpers"
	"menu-catalog/controllers/idgen"
	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB      *gorm.DB
	lines   *repositories.LineRepository
	catalog *repositories.CatalogRepository
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{
		DB:      DB,
		lines:   repositories.NewLineRepository(DB),
		catalog: repositories.NewCatalogRepository(DB),
	}
}

// CreateMenu creates a new draft menu with its name/description stored as
// translations in the given locale.
func (c *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var menuInput struct {
		Name        string `json:"name" validate:"required,min=2"`
		Description string `json:"description"`
		Locale      string `json:"locale" validate:"required,min=2"`
		Currency    string `json:"currency" validate:"required,len=3"`
	}
	if err := ctx.BodyParser(&menuInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(menuInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	menu := models.Menu{
		TenantID:  tenantID,
		Code:      fmt.Sprintf("MENU-%d", idgen.GenerateID()),
		Status:    models.MenuStatusDraft,
		Currency:  menuInput.Currency,
		CreatedBy: actor,
	}
	if err := c.DB.Create(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := c.catalog.UpsertTranslation(tenantID, models.EntityMenu, menu.ID, menuInput.Locale, models.FieldName, menuInput.Name); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if menuInput.Description != "" {
		if _, err := c.catalog.UpsertTranslation(tenantID, models.EntityMenu, menu.ID, menuInput.Locale, models.FieldDescription, menuInput.Description); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "menu.create", models.EntityMenu, menu.ID, nil, menu)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Menu created successfully", "data": menu})
}

func (c *MenuController) GetAllMenus(ctx *fiber.Ctx) error {
	var menus []models.Menu
	err := c.DB.Where("tenant_id = ?", tenantFromCtx(ctx)).Order("created_at desc").Find(&menus).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": menus})
}

// GetMenuByID returns the menu with its full line tree, ordered.
func (c *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	menu, lines, err := c.lines.MenuTree(tenantFromCtx(ctx), uint(menuID))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{"menu": menu, "lines": lines}})
}

// PublishMenu flips a draft menu to published. One-way.
func (c *MenuController) PublishMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	menu, err := c.lines.PublishMenu(tenantID, uint(menuID), actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "menu.publish", models.EntityMenu, menu.ID,
		fiber.Map{"status": models.MenuStatusDraft}, fiber.Map{"status": menu.Status})

	return ctx.JSON(fiber.Map{"success": true, "message": "Menu published successfully", "data": menu})
}

// DeleteMenu removes a menu, its lines and its live publications in one
// transaction.
func (c *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	if err := c.lines.DeleteMenu(tenantID, uint(menuID), actor); err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "menu.delete", models.EntityMenu, uint(menuID), nil, nil)

	return ctx.JSON(fiber.Map{"success": true, "message": "Menu deleted successfully"})
}
