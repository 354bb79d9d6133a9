package migration

import (
	"menu-catalog/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.UserSession{},
		&models.Location{},
		&models.Section{},
		&models.Item{},
		&models.Ingredient{},
		&models.Allergen{},
		&models.DietaryFlag{},
		&models.Menu{},
		&models.MenuLine{},
		&models.MenuPublication{},
		&models.Translation{},
		&models.AuditLog{},
	)
}
