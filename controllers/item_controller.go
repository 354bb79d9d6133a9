package controllers

import (
	"menu-catalog/controllers/helpers"
	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB      *gorm.DB
	catalog *repositories.CatalogRepository
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{
		DB:      DB,
		catalog: repositories.NewCatalogRepository(DB),
	}
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var itemInput struct {
		Name        string `json:"name" validate:"required,min=2"`
		Description string `json:"description"`
		Locale      string `json:"locale" validate:"required,min=2"`
		SKU         string `json:"sku"`
		Price       int64  `json:"price" validate:"gte=0"`
	}
	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	item, err := c.catalog.CreateItem(tenantID, itemInput.SKU, itemInput.Price, actor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := c.catalog.UpsertTranslation(tenantID, models.EntityItem, item.ID, itemInput.Locale, models.FieldName, itemInput.Name); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if itemInput.Description != "" {
		if _, err := c.catalog.UpsertTranslation(tenantID, models.EntityItem, item.ID, itemInput.Locale, models.FieldDescription, itemInput.Description); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "item.create", models.EntityItem, item.ID, nil, item)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	var items []models.Item
	err := c.DB.
		Preload("Allergens").
		Preload("DietaryFlags").
		Where("tenant_id = ?", tenantFromCtx(ctx)).
		Find(&items).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": items})
}

func (c *ItemController) GetItemByID(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	item, err := c.catalog.GetItem(tenantFromCtx(ctx), uint(itemID))
	if err != nil {
		return repoError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": item})
}

func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		SKU   *string `json:"sku"`
		Price *int64  `json:"price" validate:"omitempty,gte=0"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	item, err := c.catalog.GetItem(tenantID, uint(itemID))
	if err != nil {
		return repoError(ctx, err)
	}

	updates := map[string]interface{}{"updated_by": actorFromCtx(ctx)}
	if body.SKU != nil {
		updates["sku"] = *body.SKU
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if err := c.DB.Model(item).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": item})
}

// UpdateAssociations replaces the item's ingredient, allergen and dietary
// flag sets.
func (c *ItemController) UpdateAssociations(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		IngredientIDs []uint `json:"ingredient_ids"`
		AllergenIDs   []uint `json:"allergen_ids"`
		DietaryIDs    []uint `json:"dietary_flag_ids"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	item, err := c.catalog.ReplaceItemAssociations(tenantID, uint(itemID), body.IngredientIDs, body.AllergenIDs, body.DietaryIDs)
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Item associations updated successfully", "data": item})
}

func (c *ItemController) UpsertTranslation(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
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
	if _, err := c.catalog.GetItem(tenantID, uint(itemID)); err != nil {
		return repoError(ctx, err)
	}

	row, err := c.catalog.UpsertTranslation(tenantID, models.EntityItem, uint(itemID), body.Locale, body.Field, body.Text)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Translation saved successfully", "data": row})
}

func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	if err := c.catalog.DeleteItem(tenantID, uint(itemID)); err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actorFromCtx(ctx)), "item.delete", models.EntityItem, uint(itemID), nil, nil)

	return ctx.JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}
