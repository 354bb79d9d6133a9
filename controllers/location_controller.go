package controllers

import (
	"errors"

	"menu-catalog/controllers/helpers"
	"menu-catalog/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

type locationForm struct {
	Code     string `json:"code" validate:"required,min=2"`
	Name     string `json:"name" validate:"required,min=2"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var locationInput locationForm
	if err := ctx.BodyParser(&locationInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(locationInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	location := models.Location{
		TenantID:  tenantID,
		Code:      locationInput.Code,
		Name:      locationInput.Name,
		Address:   locationInput.Address,
		Timezone:  locationInput.Timezone,
		IsActive:  true,
		CreatedBy: actor,
	}
	if err := c.DB.Create(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "location.create", "location", location.ID, nil, location)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Location created successfully", "data": location})
}

func (c *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	var locations []models.Location
	err := c.DB.Where("tenant_id = ?", tenantFromCtx(ctx)).Find(&locations).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": locations})
}

func (c *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.Location
	err = c.DB.Where("id = ? AND tenant_id = ?", locationID, tenantFromCtx(ctx)).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": location})
}

func (c *LocationController) UpdateLocation(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.Location
	if err := c.DB.Where("id = ? AND tenant_id = ?", locationID, tenantFromCtx(ctx)).First(&location).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	var locationInput locationForm
	if err := ctx.BodyParser(&locationInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	location.Code = locationInput.Code
	location.Name = locationInput.Name
	location.Address = locationInput.Address
	location.Timezone = locationInput.Timezone
	location.UpdatedBy = actorFromCtx(ctx)

	if err := c.DB.Save(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Location updated successfully", "data": location})
}

func (c *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.Location
	if err := c.DB.Where("id = ? AND tenant_id = ?", locationID, tenantFromCtx(ctx)).First(&location).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	if err := c.DB.Delete(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Location deleted successfully"})
}
