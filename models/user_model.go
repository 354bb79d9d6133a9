package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

type User struct {
	gorm.Model
	TenantID  uint   `json:"tenant_id" gorm:"index"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	CreatedBy int
	UpdatedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IsActive       bool      `json:"is_active"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
