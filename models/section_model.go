package models

import (
	"menu-catalog/types"

	"gorm.io/gorm"
)

// Section is a reusable building block. It carries no per-menu state:
// placement and enable/disable per menu live on MenuLine.
// Titles and descriptions are stored in translations.
type Section struct {
	gorm.Model
	TenantID  uint              `json:"tenant_id" gorm:"index"`
	Code      types.SnowflakeID `json:"code" gorm:"index"`
	IsActive  bool              `json:"is_active"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
