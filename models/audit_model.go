package models

import "gorm.io/gorm"

// AuditLog entries are fire-and-forget: a failed insert never rolls back the
// mutation it describes.
type AuditLog struct {
	gorm.Model
	TenantID   uint   `json:"tenant_id" gorm:"index"`
	UserID     uint   `json:"user_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
}
