package repositories

import (
	"errors"
	"fmt"

	"menu-catalog/models"

	"gorm.io/gorm"
)

// VisibilityRepository keeps per-menu line enablement consistent with the
// global catalog flags. Two cascades live here with deliberately different
// scope:
//
//   - ToggleLine on an item line flips Item.IsVisible and syncs every line
//     referencing that item in every menu of the tenant.
//   - ToggleLine on a section line only touches that one menu; re-enabling
//     filters children by the item's current global visibility.
//   - SetSectionActive works on the Section entity and cascades to every
//     referencing section line in every menu, children included,
//     unconditionally (no visibility filter).
//
// Do not unify the two paths: callers depend on the different scope.
type VisibilityRepository struct {
	db *gorm.DB
}

func NewVisibilityRepository(db *gorm.DB) *VisibilityRepository {
	return &VisibilityRepository{db: db}
}

// ToggleResult reports what a ToggleLine call changed. SkippedChildren counts
// child lines left disabled because their item is globally hidden.
type ToggleResult struct {
	Line            models.MenuLine `json:"line"`
	NewState        bool            `json:"new_state"`
	AffectedLines   int64           `json:"affected_lines"`
	SkippedChildren int64           `json:"skipped_children"`
}

// ToggleLine flips the enablement behind a menu line.
//
// For an item line the toggle is global: Item.IsVisible is the source of
// truth, so flipping it updates is_enabled on every menu line that references
// the item, across all menus. For a section line the toggle is local to the
// given menu; see ToggleResult for what was skipped on re-enable.
func (r *VisibilityRepository) ToggleLine(tenantID, menuID, lineID uint, actor int) (*ToggleResult, error) {
	var result ToggleResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var line models.MenuLine
		err := tx.Where("id = ? AND menu_id = ? AND tenant_id = ?", lineID, menuID, tenantID).First(&line).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: line %d", ErrNotFound, lineID)
			}
			return err
		}

		switch line.LineType {
		case models.LineTypeItem:
			return r.toggleItemLine(tx, tenantID, &line, actor, &result)
		case models.LineTypeSection:
			return r.toggleSectionLine(tx, &line, actor, &result)
		default:
			return fmt.Errorf("%w: line %d has unknown type %q", ErrNotFound, lineID, line.LineType)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *VisibilityRepository) toggleItemLine(tx *gorm.DB, tenantID uint, line *models.MenuLine, actor int, result *ToggleResult) error {
	if line.ItemID == nil {
		return fmt.Errorf("%w: item line %d has no item", ErrNotFound, line.ID)
	}

	var item models.Item
	if err := tx.Where("id = ? AND tenant_id = ?", *line.ItemID, tenantID).First(&item).Error; err != nil {
		return fmt.Errorf("%w: item %d", ErrNotFound, *line.ItemID)
	}

	newVisible := !item.IsVisible
	if err := tx.Model(&item).Updates(map[string]interface{}{
		"is_visible": newVisible,
		"updated_by": actor,
	}).Error; err != nil {
		return err
	}

	// Every placement of this item follows the global flag, in every menu.
	res := tx.Model(&models.MenuLine{}).
		Where("item_id = ? AND tenant_id = ?", item.ID, tenantID).
		Updates(map[string]interface{}{"is_enabled": newVisible, "updated_by": actor})
	if res.Error != nil {
		return res.Error
	}

	line.IsEnabled = newVisible
	result.Line = *line
	result.NewState = newVisible
	result.AffectedLines = res.RowsAffected
	return nil
}

func (r *VisibilityRepository) toggleSectionLine(tx *gorm.DB, line *models.MenuLine, actor int, result *ToggleResult) error {
	newEnabled := !line.IsEnabled

	if err := tx.Model(line).Updates(map[string]interface{}{
		"is_enabled": newEnabled,
		"updated_by": actor,
	}).Error; err != nil {
		return err
	}

	if !newEnabled {
		// Disabling a section takes all of its children down with it.
		res := tx.Model(&models.MenuLine{}).
			Where("parent_line_id = ?", line.ID).
			Updates(map[string]interface{}{"is_enabled": false, "updated_by": actor})
		if res.Error != nil {
			return res.Error
		}
		result.AffectedLines = res.RowsAffected
	} else {
		// Re-enabling only brings back children whose item is globally
		// visible; the rest stay disabled and are reported as skipped.
		res := tx.Model(&models.MenuLine{}).
			Where("parent_line_id = ? AND item_id IN (?)", line.ID,
				tx.Model(&models.Item{}).Select("id").Where("is_visible = ?", true)).
			Updates(map[string]interface{}{"is_enabled": true, "updated_by": actor})
		if res.Error != nil {
			return res.Error
		}
		result.AffectedLines = res.RowsAffected

		var skipped int64
		err := tx.Model(&models.MenuLine{}).
			Where("parent_line_id = ? AND is_enabled = ?", line.ID, false).
			Count(&skipped).Error
		if err != nil {
			return err
		}
		result.SkippedChildren = skipped
	}

	line.IsEnabled = newEnabled
	result.Line = *line
	result.NewState = newEnabled
	return nil
}

// SectionCascadeResult reports the fan-out of a SetSectionActive call.
type SectionCascadeResult struct {
	Section      models.Section `json:"section"`
	SectionLines int64          `json:"section_lines"`
	ChildLines   int64          `json:"child_lines"`
}

// SetSectionActive flips the Section entity itself and cascades to every
// section line referencing it, in every menu, plus all their child item
// lines. The child update is unconditional: unlike a per-menu section
// re-enable there is no item-visibility filter on this path.
func (r *VisibilityRepository) SetSectionActive(tenantID, sectionID uint, isActive bool, actor int) (*SectionCascadeResult, error) {
	var result SectionCascadeResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var section models.Section
		err := tx.Where("id = ? AND tenant_id = ?", sectionID, tenantID).First(&section).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: section %d", ErrNotFound, sectionID)
			}
			return err
		}

		if err := tx.Model(&section).Updates(map[string]interface{}{
			"is_active":  isActive,
			"updated_by": actor,
		}).Error; err != nil {
			return err
		}
		section.IsActive = isActive

		var sectionLines []models.MenuLine
		err = tx.Where("section_id = ? AND tenant_id = ? AND line_type = ?",
			section.ID, tenantID, models.LineTypeSection).Find(&sectionLines).Error
		if err != nil {
			return err
		}

		for _, sl := range sectionLines {
			if err := tx.Model(&models.MenuLine{}).Where("id = ?", sl.ID).
				Updates(map[string]interface{}{"is_enabled": isActive, "updated_by": actor}).Error; err != nil {
				return err
			}
			res := tx.Model(&models.MenuLine{}).
				Where("parent_line_id = ?", sl.ID).
				Updates(map[string]interface{}{"is_enabled": isActive, "updated_by": actor})
			if res.Error != nil {
				return res.Error
			}
			result.ChildLines += res.RowsAffected
		}

		result.Section = section
		result.SectionLines = int64(len(sectionLines))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
