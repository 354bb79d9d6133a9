package routes

import (
	"menu-catalog/config"
	"menu-catalog/controllers"
	"menu-catalog/middleware"
	"menu-catalog/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)
	lineController := controllers.NewLineController(db)
	exportController := controllers.NewExportController(db)

	api := app.Group(config.MAIN_ROUTES+"/menus", middleware.AuthMiddleware)

	api.Get("/", menuController.GetAllMenus)
	api.Post("/", middleware.CheckRole(models.RoleEditor), menuController.CreateMenu)
	api.Get("/:id", menuController.GetMenuByID)
	api.Delete("/:id", middleware.CheckRole(models.RoleEditor), menuController.DeleteMenu)
	api.Post("/:id/publish", middleware.CheckRole(models.RoleAdmin), menuController.PublishMenu)
	api.Get("/:id/export", exportController.ExportMenu)

	// Line tree operations
	api.Post("/:id/lines", middleware.CheckRole(models.RoleEditor), lineController.InsertLine)
	api.Put("/:id/lines/reorder", middleware.CheckRole(models.RoleEditor), lineController.ReorderLines)
	api.Put("/:id/lines/:lineId/move", middleware.CheckRole(models.RoleEditor), lineController.MoveItemLine)
	api.Put("/:id/lines/:lineId/toggle", middleware.CheckRole(models.RoleEditor), lineController.ToggleLine)
	api.Delete("/:id/lines/:lineId", middleware.CheckRole(models.RoleEditor), lineController.DeleteLine)
}
