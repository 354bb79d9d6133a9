package routes

import (
	"menu-catalog/config"
	"menu-catalog/controllers"
	"menu-catalog/middleware"
	"menu-catalog/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSectionRoutes(app *fiber.App, db *gorm.DB) {
	sectionController := controllers.NewSectionController(db)

	api := app.Group(config.MAIN_ROUTES+"/sections", middleware.AuthMiddleware)

	api.Get("/", sectionController.GetAllSections)
	api.Post("/", middleware.CheckRole(models.RoleEditor), sectionController.CreateSection)
	api.Get("/:id", sectionController.GetSectionByID)
	api.Put("/:id/active", middleware.CheckRole(models.RoleEditor), sectionController.SetSectionActive)
	api.Put("/:id/translations", middleware.CheckRole(models.RoleEditor), sectionController.UpsertTranslation)
	api.Delete("/:id", middleware.CheckRole(models.RoleEditor), sectionController.DeleteSection)
}

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {
	itemController := controllers.NewItemController(db)

	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)

	api.Get("/", itemController.GetAllItems)
	api.Post("/", middleware.CheckRole(models.RoleEditor), itemController.CreateItem)
	api.Get("/:id", itemController.GetItemByID)
	api.Put("/:id", middleware.CheckRole(models.RoleEditor), itemController.UpdateItem)
	api.Put("/:id/associations", middleware.CheckRole(models.RoleEditor), itemController.UpdateAssociations)
	api.Put("/:id/translations", middleware.CheckRole(models.RoleEditor), itemController.UpsertTranslation)
	api.Delete("/:id", middleware.CheckRole(models.RoleEditor), itemController.DeleteItem)
}
