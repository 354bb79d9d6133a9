package repositories

import (
	"errors"
	"fmt"

	"menu-catalog/controllers/idgen"
	"menu-catalog/models"
	"menu-catalog/types"

	"gorm.io/gorm"
)

// CatalogRepository owns the reusable catalog entities. Sections and items
// live independently of any menu; menus reference them through lines.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateSection(tenantID uint, actor int) (*models.Section, error) {
	section := models.Section{
		TenantID:  tenantID,
		Code:      types.SnowflakeID(idgen.GenerateID()),
		IsActive:  true,
		CreatedBy: actor,
	}
	if err := r.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *CatalogRepository) GetSection(tenantID, sectionID uint) (*models.Section, error) {
	var section models.Section
	err := r.db.Where("id = ? AND tenant_id = ?", sectionID, tenantID).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: section %d", ErrNotFound, sectionID)
		}
		return nil, err
	}
	return &section, nil
}

func (r *CatalogRepository) CreateItem(tenantID uint, sku string, price int64, actor int) (*models.Item, error) {
	item := models.Item{
		TenantID:  tenantID,
		Code:      types.SnowflakeID(idgen.GenerateID()),
		SKU:       sku,
		IsVisible: true,
		Price:     price,
		CreatedBy: actor,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) GetItem(tenantID, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.
		Preload("Ingredients").
		Preload("Allergens").
		Preload("DietaryFlags").
		Where("id = ? AND tenant_id = ?", itemID, tenantID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}
		return nil, err
	}
	return &item, nil
}

// ReplaceItemAssociations swaps the ingredient/allergen/dietary-flag sets of
// an item in one go, the way the admin screens submit them.
func (r *CatalogRepository) ReplaceItemAssociations(tenantID, itemID uint, ingredientIDs, allergenIDs, flagIDs []uint) (*models.Item, error) {
	item, err := r.GetItem(tenantID, itemID)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var ingredients []models.Ingredient
		if len(ingredientIDs) > 0 {
			if err := tx.Where("id IN ? AND tenant_id = ?", ingredientIDs, tenantID).Find(&ingredients).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(item).Association("Ingredients").Replace(ingredients); err != nil {
			return err
		}

		var allergens []models.Allergen
		if len(allergenIDs) > 0 {
			if err := tx.Where("id IN ? AND tenant_id = ?", allergenIDs, tenantID).Find(&allergens).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(item).Association("Allergens").Replace(allergens); err != nil {
			return err
		}

		var flags []models.DietaryFlag
		if len(flagIDs) > 0 {
			if err := tx.Where("id IN ? AND tenant_id = ?", flagIDs, tenantID).Find(&flags).Error; err != nil {
				return err
			}
		}
		return tx.Model(item).Association("DietaryFlags").Replace(flags)
	})
	if err != nil {
		return nil, err
	}
	return r.GetItem(tenantID, itemID)
}

// UpsertTranslation writes one localized text field for a catalog entity.
func (r *CatalogRepository) UpsertTranslation(tenantID uint, entityType string, entityID uint, locale, field, text string) (*models.Translation, error) {
	var row models.Translation
	err := r.db.Where(
		"tenant_id = ? AND entity_type = ? AND entity_id = ? AND locale = ? AND field = ?",
		tenantID, entityType, entityID, locale, field,
	).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		row = models.Translation{
			TenantID:   tenantID,
			EntityType: entityType,
			EntityID:   entityID,
			Locale:     locale,
			Field:      field,
			Text:       text,
		}
		if err := r.db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	row.Text = text
	if err := r.db.Model(&row).Update("text", text).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteItem removes an item and, in the same transaction, every menu line
// still referencing it.
func (r *CatalogRepository) DeleteItem(tenantID, itemID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Where("id = ? AND tenant_id = ?", itemID, tenantID).First(&item).Error; err != nil {
			return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}
		if err := tx.Where("item_id = ? AND line_type = ?", item.ID, models.LineTypeItem).Delete(&models.MenuLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// DeleteSection removes a section, its lines, and their child item lines.
func (r *CatalogRepository) DeleteSection(tenantID, sectionID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var section models.Section
		if err := tx.Where("id = ? AND tenant_id = ?", sectionID, tenantID).First(&section).Error; err != nil {
			return fmt.Errorf("%w: section %d", ErrNotFound, sectionID)
		}

		var sectionLines []models.MenuLine
		if err := tx.Where("section_id = ? AND line_type = ?", section.ID, models.LineTypeSection).Find(&sectionLines).Error; err != nil {
			return err
		}
		for _, sl := range sectionLines {
			if err := tx.Where("parent_line_id = ?", sl.ID).Delete(&models.MenuLine{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("section_id = ? AND line_type = ?", section.ID, models.LineTypeSection).Delete(&models.MenuLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
}
