package routes

import (
	"menu-catalog/config"
	"menu-catalog/controllers"
	"menu-catalog/middleware"
	"menu-catalog/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPublicationRoutes(app *fiber.App, db *gorm.DB) {
	publicationController := controllers.NewPublicationController(db)

	api := app.Group(config.MAIN_ROUTES+"/publications", middleware.AuthMiddleware)

	api.Put("/:id/current", middleware.CheckRole(models.RoleAdmin), publicationController.SetCurrent)
	api.Put("/:id/deactivate", middleware.CheckRole(models.RoleAdmin), publicationController.Deactivate)
}
