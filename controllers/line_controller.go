package controllers

import (
	"menu-catalog/controllers/helpers"
	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LineController exposes the line tree operations: placement, ordering and
// the enable/disable cascades.
type LineController struct {
	DB         *gorm.DB
	lines      *repositories.LineRepository
	visibility *repositories.VisibilityRepository
}

func NewLineController(DB *gorm.DB) *LineController {
	return &LineController{
		DB:         DB,
		lines:      repositories.NewLineRepository(DB),
		visibility: repositories.NewVisibilityRepository(DB),
	}
}

func (c *LineController) InsertLine(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input repositories.InsertLineInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	line, err := c.lines.InsertLine(tenantID, uint(menuID), input, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "line.insert", "menu_line", line.ID, nil, line)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Line inserted successfully", "data": line})
}

func (c *LineController) ReorderLines(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		Lines []repositories.LineOrder `json:"lines" validate:"required,min=1,dive"`
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

	updated, err := c.lines.ReorderLines(tenantID, uint(menuID), body.Lines, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "line.reorder", models.EntityMenu, uint(menuID), nil, body.Lines)

	return ctx.JSON(fiber.Map{"success": true, "message": "Lines reordered successfully", "data": updated})
}

func (c *LineController) MoveItemLine(ctx *fiber.Ctx) error {
	lineID, err := ctx.ParamsInt("lineId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		TargetSectionLineID uint `json:"target_section_line_id" validate:"required"`
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

	line, err := c.lines.MoveItemLine(tenantID, uint(lineID), body.TargetSectionLineID, actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "line.move", "menu_line", line.ID, nil, line)

	return ctx.JSON(fiber.Map{"success": true, "message": "Line moved successfully", "data": line})
}

func (c *LineController) DeleteLine(ctx *fiber.Ctx) error {
	lineID, err := ctx.ParamsInt("lineId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)

	if err := c.lines.DeleteLine(tenantID, uint(lineID)); err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actorFromCtx(ctx)), "line.delete", "menu_line", uint(lineID), nil, nil)

	return ctx.JSON(fiber.Map{"success": true, "message": "Line deleted successfully"})
}

// ToggleLine flips enablement behind a line. Item lines cascade globally,
// section lines cascade within this menu only.
func (c *LineController) ToggleLine(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	lineID, err := ctx.ParamsInt("lineId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	actor := actorFromCtx(ctx)

	result, err := c.visibility.ToggleLine(tenantID, uint(menuID), uint(lineID), actor)
	if err != nil {
		return repoError(ctx, err)
	}

	helpers.InsertAuditLog(c.DB, tenantID, uint(actor), "line.toggle", "menu_line", result.Line.ID,
		fiber.Map{"is_enabled": !result.NewState}, fiber.Map{"is_enabled": result.NewState})

	return ctx.JSON(fiber.Map{"success": true, "message": "Line toggled successfully", "data": result})
}
