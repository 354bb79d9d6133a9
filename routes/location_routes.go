package routes

import (
	"menu-catalog/config"
	"menu-catalog/controllers"
	"menu-catalog/middleware"
	"menu-catalog/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	locationController := controllers.NewLocationController(db)
	publicationController := controllers.NewPublicationController(db)

	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)

	api.Get("/", locationController.GetAllLocations)
	api.Post("/", middleware.CheckRole(models.RoleAdmin), locationController.CreateLocation)
	api.Get("/:id", locationController.GetLocationByID)
	api.Put("/:id", middleware.CheckRole(models.RoleAdmin), locationController.UpdateLocation)
	api.Delete("/:id", middleware.CheckRole(models.RoleAdmin), locationController.DeleteLocation)

	api.Get("/:id/publications", publicationController.GetLocationPublications)
	api.Post("/:id/activate", middleware.CheckRole(models.RoleAdmin), publicationController.Activate)
}
