package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuPublication records that a published menu is (or was) being served at a
// location. Several publications may be current at the same location at once,
// e.g. a lunch and a dinner menu.
type MenuPublication struct {
	gorm.Model
	TenantID    uint       `json:"tenant_id" gorm:"index"`
	LocationID  uint       `json:"location_id" gorm:"index"`
	MenuID      uint       `json:"menu_id" gorm:"index"`
	IsCurrent   bool       `json:"is_current"`
	ActivatedAt time.Time  `json:"activated_at"`
	RetiredAt   *time.Time `json:"retired_at"`
	CreatedBy   int
	UpdatedBy   int
}
