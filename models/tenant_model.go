package models

import "gorm.io/gorm"

type Tenant struct {
	gorm.Model
	Code          string `json:"code" gorm:"unique"`
	Name          string `json:"name"`
	DefaultLocale string `json:"default_locale" gorm:"default:en"`
	CreatedBy     int
	UpdatedBy     int
}
