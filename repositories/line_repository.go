package repositories

import (
	"errors"
	"fmt"
	"time"

	"menu-catalog/models"

	"gorm.io/gorm"
)

// LineRepository owns the menu line tree: placements of sections and items
// inside a menu, their ordering, and the draft/published mutability gate.
// Structural edits (insert, reorder, move, delete) are only allowed while the
// menu is a draft; publish is one-way.
type LineRepository struct {
	db *gorm.DB
}

func NewLineRepository(db *gorm.DB) *LineRepository {
	return &LineRepository{db: db}
}

type InsertLineInput struct {
	LineType     string `json:"line_type" validate:"required,oneof=section item"`
	SectionID    *uint  `json:"section_id"`
	ItemID       *uint  `json:"item_id"`
	ParentLineID *uint  `json:"parent_line_id"`
	Position     *int   `json:"position"`
}

type LineOrder struct {
	LineID       uint  `json:"line_id" validate:"required"`
	DisplayOrder int   `json:"display_order"`
	ParentLineID *uint `json:"parent_line_id"`
}

func (r *LineRepository) getDraftMenu(tx *gorm.DB, tenantID, menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := tx.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
		}
		return nil, err
	}
	if menu.Status != models.MenuStatusDraft {
		return nil, fmt.Errorf("%w: menu %d is %s", ErrMenuNotEditable, menuID, menu.Status)
	}
	return &menu, nil
}

// InsertLine places a section or an item into a menu. Without an explicit
// position the line is appended after the current max sibling display order.
func (r *LineRepository) InsertLine(tenantID, menuID uint, input InsertLineInput, actor int) (*models.MenuLine, error) {
	var line models.MenuLine

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.getDraftMenu(tx, tenantID, menuID); err != nil {
			return err
		}

		switch input.LineType {
		case models.LineTypeSection:
			if input.SectionID == nil {
				return fmt.Errorf("%w: section line without section id", ErrNotFound)
			}
			var section models.Section
			if err := tx.Where("id = ? AND tenant_id = ?", *input.SectionID, tenantID).First(&section).Error; err != nil {
				return fmt.Errorf("%w: section %d", ErrNotFound, *input.SectionID)
			}
			// A section line can never be nested under another line.
			if input.ParentLineID != nil {
				return fmt.Errorf("%w: section lines must be top-level", ErrInvalidParent)
			}
			// A line stores exactly one reference; drop the one that does
			// not match the type.
			input.ItemID = nil
		case models.LineTypeItem:
			if input.ItemID == nil {
				return fmt.Errorf("%w: item line without item id", ErrNotFound)
			}
			var item models.Item
			if err := tx.Where("id = ? AND tenant_id = ?", *input.ItemID, tenantID).First(&item).Error; err != nil {
				return fmt.Errorf("%w: item %d", ErrNotFound, *input.ItemID)
			}
			input.SectionID = nil
		default:
			return fmt.Errorf("%w: unknown line type %q", ErrNotFound, input.LineType)
		}

		if input.ParentLineID != nil {
			var parent models.MenuLine
			err := tx.Where("id = ? AND menu_id = ? AND tenant_id = ? AND line_type = ?",
				*input.ParentLineID, menuID, tenantID, models.LineTypeSection).First(&parent).Error
			if err != nil {
				return fmt.Errorf("%w: line %d", ErrInvalidParent, *input.ParentLineID)
			}
		}

		displayOrder, err := r.nextDisplayOrder(tx, menuID, input.ParentLineID)
		if err != nil {
			return err
		}
		if input.Position != nil {
			displayOrder = *input.Position
			// Shift trailing siblings so display orders stay unique.
			shift := tx.Model(&models.MenuLine{}).
				Where("menu_id = ? AND display_order >= ?", menuID, displayOrder)
			if input.ParentLineID == nil {
				shift = shift.Where("parent_line_id IS NULL")
			} else {
				shift = shift.Where("parent_line_id = ?", *input.ParentLineID)
			}
			if err := shift.Update("display_order", gorm.Expr("display_order + 1")).Error; err != nil {
				return err
			}
		}

		line = models.MenuLine{
			TenantID:     tenantID,
			MenuID:       menuID,
			LineType:     input.LineType,
			SectionID:    input.SectionID,
			ItemID:       input.ItemID,
			ParentLineID: input.ParentLineID,
			DisplayOrder: displayOrder,
			IsEnabled:    true,
			CreatedBy:    actor,
		}
		return tx.Create(&line).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *LineRepository) nextDisplayOrder(tx *gorm.DB, menuID uint, parentLineID *uint) (int, error) {
	var max *int
	query := tx.Model(&models.MenuLine{}).Select("MAX(display_order)").Where("menu_id = ?", menuID)
	if parentLineID == nil {
		query = query.Where("parent_line_id IS NULL")
	} else {
		query = query.Where("parent_line_id = ?", *parentLineID)
	}
	if err := query.Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// ReorderLines applies a full placement list as one atomic batch. Every line
// must belong to the menu; a partially applied reorder is never observable.
func (r *LineRepository) ReorderLines(tenantID, menuID uint, orders []LineOrder, actor int) ([]models.MenuLine, error) {
	var updated []models.MenuLine

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.getDraftMenu(tx, tenantID, menuID); err != nil {
			return err
		}

		for _, o := range orders {
			var line models.MenuLine
			err := tx.Where("id = ? AND menu_id = ? AND tenant_id = ?", o.LineID, menuID, tenantID).First(&line).Error
			if err != nil {
				return fmt.Errorf("%w: line %d", ErrNotFound, o.LineID)
			}

			if o.ParentLineID != nil {
				var parent models.MenuLine
				err := tx.Where("id = ? AND menu_id = ? AND line_type = ?",
					*o.ParentLineID, menuID, models.LineTypeSection).First(&parent).Error
				if err != nil {
					return fmt.Errorf("%w: line %d", ErrInvalidParent, *o.ParentLineID)
				}
				if line.LineType == models.LineTypeSection {
					return fmt.Errorf("%w: section lines must be top-level", ErrInvalidParent)
				}
			}

			line.DisplayOrder = o.DisplayOrder
			line.ParentLineID = o.ParentLineID
			line.UpdatedBy = actor
			if err := tx.Model(&line).Updates(map[string]interface{}{
				"display_order":  o.DisplayOrder,
				"parent_line_id": o.ParentLineID,
				"updated_by":     actor,
			}).Error; err != nil {
				return err
			}
			updated = append(updated, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveItemLine re-parents an item line under a section line of the same menu
// and appends it after the section's current children.
func (r *LineRepository) MoveItemLine(tenantID, lineID, targetSectionLineID uint, actor int) (*models.MenuLine, error) {
	var line models.MenuLine

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", lineID, tenantID).First(&line).Error; err != nil {
			return fmt.Errorf("%w: line %d", ErrNotFound, lineID)
		}
		if line.LineType != models.LineTypeItem {
			return fmt.Errorf("%w: line %d is not an item line", ErrInvalidParent, lineID)
		}
		if _, err := r.getDraftMenu(tx, tenantID, line.MenuID); err != nil {
			return err
		}

		var target models.MenuLine
		err := tx.Where("id = ? AND menu_id = ? AND line_type = ?",
			targetSectionLineID, line.MenuID, models.LineTypeSection).First(&target).Error
		if err != nil {
			return fmt.Errorf("%w: line %d", ErrInvalidParent, targetSectionLineID)
		}

		displayOrder, err := r.nextDisplayOrder(tx, line.MenuID, &target.ID)
		if err != nil {
			return err
		}

		line.ParentLineID = &target.ID
		line.DisplayOrder = displayOrder
		line.UpdatedBy = actor
		return tx.Model(&line).Updates(map[string]interface{}{
			"parent_line_id": target.ID,
			"display_order":  displayOrder,
			"updated_by":     actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// DeleteLine removes a line from its menu. Deleting a section line cascades
// to its child item lines in the same transaction.
func (r *LineRepository) DeleteLine(tenantID, lineID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var line models.MenuLine
		if err := tx.Where("id = ? AND tenant_id = ?", lineID, tenantID).First(&line).Error; err != nil {
			return fmt.Errorf("%w: line %d", ErrNotFound, lineID)
		}
		if _, err := r.getDraftMenu(tx, tenantID, line.MenuID); err != nil {
			return err
		}

		if line.LineType == models.LineTypeSection {
			if err := tx.Where("parent_line_id = ?", line.ID).Delete(&models.MenuLine{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&line).Error
	})
}

// DeleteMenu removes a menu with its whole line tree and retires any
// publications still pointing at it, so location reads never encounter a
// publication whose menu is gone.
func (r *LineRepository) DeleteMenu(tenantID, menuID uint, actor int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
			return fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
		}

		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuLine{}).Error; err != nil {
			return err
		}

		now := time.Now()
		err := tx.Model(&models.MenuPublication{}).
			Where("menu_id = ? AND is_current = ?", menu.ID, true).
			Updates(map[string]interface{}{"is_current": false, "retired_at": now, "updated_by": actor}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&menu).Error
	})
}

// PublishMenu moves a draft menu to published. The transition is one-way:
// further structural edits require a new draft menu.
func (r *LineRepository) PublishMenu(tenantID, menuID uint, actor int) (*models.Menu, error) {
	var menu models.Menu

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
			return fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
		}
		if menu.Status == models.MenuStatusPublished {
			return fmt.Errorf("%w: menu %d already published", ErrConflict, menuID)
		}

		menu.Status = models.MenuStatusPublished
		menu.UpdatedBy = actor
		return tx.Model(&menu).Updates(map[string]interface{}{
			"status":     models.MenuStatusPublished,
			"updated_by": actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// MenuTree loads a menu with its top-level lines and their children, ordered
// by display order, with catalog references preloaded.
func (r *LineRepository) MenuTree(tenantID, menuID uint) (*models.Menu, []models.MenuLine, error) {
	var menu models.Menu
	if err := r.db.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
	}

	var lines []models.MenuLine
	err := r.db.
		Preload("Section").
		Preload("Item").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc").Preload("Item")
		}).
		Where("menu_id = ? AND parent_line_id IS NULL", menuID).
		Order("display_order asc").
		Find(&lines).Error
	if err != nil {
		return nil, nil, err
	}
	return &menu, lines, nil
}
