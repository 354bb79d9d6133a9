package main

import (
	"fmt"
	"log"

	"menu-catalog/config"
	"menu-catalog/controllers/idgen"
	"menu-catalog/database"
	"menu-catalog/migration"
	"menu-catalog/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = migration.Migrate(db)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupMenuRoutes(app, db)
	routes.SetupSectionRoutes(app, db)
	routes.SetupItemRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupPublicationRoutes(app, db)
	routes.SetupDisplayRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
