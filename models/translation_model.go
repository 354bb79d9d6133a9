package models

import "gorm.io/gorm"

const (
	EntityMenu    = "menu"
	EntitySection = "section"
	EntityItem    = "item"
)

const (
	FieldName        = "name"
	FieldDescription = "description"
)

type Translation struct {
	gorm.Model
	TenantID   uint   `json:"tenant_id" gorm:"index"`
	EntityType string `json:"entity_type" gorm:"uniqueIndex:idx_translation_key"`
	EntityID   uint   `json:"entity_id" gorm:"uniqueIndex:idx_translation_key"`
	Locale     string `json:"locale" gorm:"uniqueIndex:idx_translation_key"`
	Field      string `json:"field" gorm:"uniqueIndex:idx_translation_key"`
	Text       string `json:"text"`
}
