package routes

import (
	"menu-catalog/config"
	"menu-catalog/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Guest routes: no auth, read-only.
func SetupDisplayRoutes(app *fiber.App, db *gorm.DB) {
	displayController := controllers.NewDisplayController(db)

	guest := app.Group(config.GUEST_ROUTES)
	guest.Get("/display/:locationCode/menus", displayController.GetLocationMenus)
}
