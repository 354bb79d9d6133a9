package models

import "gorm.io/gorm"

type Location struct {
	gorm.Model
	TenantID  uint   `json:"tenant_id" gorm:"uniqueIndex:idx_location_tenant_code"`
	Code      string `json:"code" gorm:"uniqueIndex:idx_location_tenant_code"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Timezone  string `json:"timezone"`
	IsActive  bool   `json:"is_active"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
