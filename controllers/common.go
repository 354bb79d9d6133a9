package controllers

import (
	"errors"

	"menu-catalog/repositories"

	"github.com/gofiber/fiber/v2"
)

// tenantFromCtx reads the tenant scope the auth middleware resolved.
func tenantFromCtx(ctx *fiber.Ctx) uint {
	tenantID, _ := ctx.Locals("tenantID").(float64)
	return uint(tenantID)
}

func actorFromCtx(ctx *fiber.Ctx) int {
	userID, _ := ctx.Locals("userID").(float64)
	return int(userID)
}

// repoError maps the repository failure taxonomy onto HTTP responses.
func repoError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidParent):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrMenuNotEditable),
		errors.Is(err, repositories.ErrMenuNotPublished),
		errors.Is(err, repositories.ErrConflict):
		status = fiber.StatusConflict
	}
	return ctx.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}
