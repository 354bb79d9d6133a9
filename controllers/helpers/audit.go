package helpers

import (
	"encoding/json"
	"log"

	"menu-catalog/models"

	"gorm.io/gorm"
)

// InsertAuditLog records a mutation fire-and-forget. A failed insert is
// logged and swallowed so it never rolls back the mutation it describes.
func InsertAuditLog(db *gorm.DB, tenantID, userID uint, action, entityType string, entityID uint, oldValue, newValue interface{}) {
	entry := models.AuditLog{
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   toJSON(oldValue),
		NewValue:   toJSON(newValue),
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Println("audit log insert failed:", err)
	}
}

func toJSON(v interface{}) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
