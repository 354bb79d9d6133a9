package repositories

import (
	"errors"
	"fmt"
	"time"

	"menu-catalog/models"

	"gorm.io/gorm"
)

// PublicationRepository tracks which menus are live at which location.
//
// Activate and SetCurrent deliberately differ in scope: Activate upserts a
// (location, menu) publication and leaves sibling publications alone, so a
// location can serve several menus at once (lunch plus dinner). SetCurrent
// with true is the exclusive path: it retires every other publication at the
// location first. Callers pick the policy by picking the operation.
type PublicationRepository struct {
	db *gorm.DB
}

func NewPublicationRepository(db *gorm.DB) *PublicationRepository {
	return &PublicationRepository{db: db}
}

// Activate makes a published menu current at a location. An existing
// publication for the pair is reactivated in place, which also absorbs
// duplicate activation races.
func (r *PublicationRepository) Activate(tenantID, locationID, menuID uint, actor int) (*models.MenuPublication, error) {
	var pub models.MenuPublication

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
			return fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
		}
		if menu.Status != models.MenuStatusPublished {
			return fmt.Errorf("%w: menu %d is %s", ErrMenuNotPublished, menuID, menu.Status)
		}

		var location models.Location
		if err := tx.Where("id = ? AND tenant_id = ?", locationID, tenantID).First(&location).Error; err != nil {
			return fmt.Errorf("%w: location %d", ErrNotFound, locationID)
		}

		now := time.Now()
		err := tx.Where("location_id = ? AND menu_id = ?", locationID, menuID).First(&pub).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			pub = models.MenuPublication{
				TenantID:    tenantID,
				LocationID:  locationID,
				MenuID:      menuID,
				IsCurrent:   true,
				ActivatedAt: now,
				CreatedBy:   actor,
			}
			return tx.Create(&pub).Error
		}

		pub.IsCurrent = true
		pub.ActivatedAt = now
		pub.RetiredAt = nil
		pub.UpdatedBy = actor
		return tx.Model(&pub).Updates(map[string]interface{}{
			"is_current":   true,
			"activated_at": now,
			"retired_at":   nil,
			"updated_by":   actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

// SetCurrent(true) makes this publication the only current one at its
// location: all sibling publications are retired first.
func (r *PublicationRepository) SetCurrent(tenantID, publicationID uint, isCurrent bool, actor int) (*models.MenuPublication, error) {
	var pub models.MenuPublication

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", publicationID, tenantID).First(&pub).Error; err != nil {
			return fmt.Errorf("%w: publication %d", ErrNotFound, publicationID)
		}

		now := time.Now()
		if !isCurrent {
			pub.IsCurrent = false
			pub.RetiredAt = &now
			pub.UpdatedBy = actor
			return tx.Model(&pub).Updates(map[string]interface{}{
				"is_current": false,
				"retired_at": now,
				"updated_by": actor,
			}).Error
		}

		err := tx.Model(&models.MenuPublication{}).
			Where("location_id = ? AND id <> ? AND is_current = ?", pub.LocationID, pub.ID, true).
			Updates(map[string]interface{}{"is_current": false, "retired_at": now, "updated_by": actor}).Error
		if err != nil {
			return err
		}

		pub.IsCurrent = true
		pub.ActivatedAt = now
		pub.RetiredAt = nil
		pub.UpdatedBy = actor
		return tx.Model(&pub).Updates(map[string]interface{}{
			"is_current":   true,
			"activated_at": now,
			"retired_at":   nil,
			"updated_by":   actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

// Deactivate retires a publication. The row is kept for history; reads only
// consider current publications.
func (r *PublicationRepository) Deactivate(tenantID, publicationID uint, actor int) (*models.MenuPublication, error) {
	return r.SetCurrent(tenantID, publicationID, false, actor)
}

// CurrentPublications lists the publications currently live at a location.
func (r *PublicationRepository) CurrentPublications(tenantID, locationID uint) ([]models.MenuPublication, error) {
	var pubs []models.MenuPublication
	err := r.db.
		Where("tenant_id = ? AND location_id = ? AND is_current = ?", tenantID, locationID, true).
		Order("activated_at asc").
		Find(&pubs).Error
	return pubs, err
}
