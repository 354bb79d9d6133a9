package repositories

import (
	"testing"

	"menu-catalog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Tenant{},
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
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) models.Tenant {
	t.Helper()
	tenant := models.Tenant{Code: "T1", Name: "Test Tenant", DefaultLocale: "en"}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("seed tenant: %v", err)
	}
	return tenant
}

func seedLocation(t *testing.T, db *gorm.DB, tenantID uint, code string) models.Location {
	t.Helper()
	location := models.Location{TenantID: tenantID, Code: code, Name: "Location " + code, IsActive: true}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return location
}

func seedMenu(t *testing.T, db *gorm.DB, tenantID uint, code, status string) models.Menu {
	t.Helper()
	menu := models.Menu{TenantID: tenantID, Code: code, Status: status, Currency: "EUR"}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return menu
}

func seedSection(t *testing.T, db *gorm.DB, tenantID uint) models.Section {
	t.Helper()
	section := models.Section{TenantID: tenantID, IsActive: true}
	if err := db.Create(&section).Error; err != nil {
		t.Fatalf("seed section: %v", err)
	}
	return section
}

func seedItem(t *testing.T, db *gorm.DB, tenantID uint, visible bool, price int64) models.Item {
	t.Helper()
	item := models.Item{TenantID: tenantID, IsVisible: visible, Price: price}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func seedSectionLine(t *testing.T, db *gorm.DB, menu models.Menu, section models.Section, order int, enabled bool) models.MenuLine {
	t.Helper()
	line := models.MenuLine{
		TenantID:     menu.TenantID,
		MenuID:       menu.ID,
		LineType:     models.LineTypeSection,
		SectionID:    &section.ID,
		DisplayOrder: order,
		IsEnabled:    enabled,
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed section line: %v", err)
	}
	return line
}

func seedItemLine(t *testing.T, db *gorm.DB, menu models.Menu, item models.Item, parentLineID *uint, order int, enabled bool) models.MenuLine {
	t.Helper()
	line := models.MenuLine{
		TenantID:     menu.TenantID,
		MenuID:       menu.ID,
		LineType:     models.LineTypeItem,
		ItemID:       &item.ID,
		ParentLineID: parentLineID,
		DisplayOrder: order,
		IsEnabled:    enabled,
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed item line: %v", err)
	}
	return line
}

func reloadLine(t *testing.T, db *gorm.DB, id uint) models.MenuLine {
	t.Helper()
	var line models.MenuLine
	if err := db.First(&line, id).Error; err != nil {
		t.Fatalf("reload line %d: %v", id, err)
	}
	return line
}

func seedTranslation(t *testing.T, db *gorm.DB, tenantID uint, entityType string, entityID uint, locale, field, text string) {
	t.Helper()
	row := models.Translation{
		TenantID:   tenantID,
		EntityType: entityType,
		EntityID:   entityID,
		Locale:     locale,
		Field:      field,
		Text:       text,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed translation: %v", err)
	}
}
