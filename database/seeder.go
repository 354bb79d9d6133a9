package database

import (
	"errors"
	"log"

	"menu-catalog/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedTenant(db)
	SeedUserMaster(db)
	SeedAllergens(db)
	SeedDietaryFlags(db)
}

func SeedTenant(db *gorm.DB) {
	tenant := models.Tenant{
		Code:          "DEMO",
		Name:          "Demo Restaurant Group",
		DefaultLocale: "en",
	}

	var existing models.Tenant
	err := db.Where("code = ?", tenant.Code).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&tenant).Error; err != nil {
				log.Fatalf("Failed to create tenant: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	var tenant models.Tenant
	if err := db.Where("code = ?", "DEMO").First(&tenant).Error; err != nil {
		return
	}

	var existing models.User
	if err := db.Where("email = ?", "admin@demo.local").First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	user := models.User{
		TenantID: tenant.ID,
		Name:     "Administrator",
		Email:    "admin@demo.local",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	db.Create(&user)
}

func SeedAllergens(db *gorm.DB) {
	var tenant models.Tenant
	if err := db.Where("code = ?", "DEMO").First(&tenant).Error; err != nil {
		return
	}

	allergens := []models.Allergen{
		{TenantID: tenant.ID, Code: "GLUTEN", Name: "Gluten"},
		{TenantID: tenant.ID, Code: "LACTOSE", Name: "Lactose"},
		{TenantID: tenant.ID, Code: "NUTS", Name: "Nuts"},
		{TenantID: tenant.ID, Code: "SHELLFISH", Name: "Shellfish"},
	}

	for _, a := range allergens {
		var existing models.Allergen
		if err := db.Where("tenant_id = ? AND code = ?", a.TenantID, a.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&a)
			}
		}
	}
}

func SeedDietaryFlags(db *gorm.DB) {
	var tenant models.Tenant
	if err := db.Where("code = ?", "DEMO").First(&tenant).Error; err != nil {
		return
	}

	flags := []models.DietaryFlag{
		{TenantID: tenant.ID, Code: "VEGAN", Name: "Vegan"},
		{TenantID: tenant.ID, Code: "VEGETARIAN", Name: "Vegetarian"},
		{TenantID: tenant.ID, Code: "HALAL", Name: "Halal"},
	}

	for _, f := range flags {
		var existing models.DietaryFlag
		if err := db.Where("tenant_id = ? AND code = ?", f.TenantID, f.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&f)
			}
		}
	}
}
