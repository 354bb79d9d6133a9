package models

import (
	"menu-catalog/types"

	"gorm.io/gorm"
)

// Item is reusable across menus. IsVisible is the single global source of
// truth for whether the item may appear enabled on any menu anywhere.
type Item struct {
	gorm.Model
	TenantID     uint              `json:"tenant_id" gorm:"index"`
	Code         types.SnowflakeID `json:"code" gorm:"index"`
	SKU          string            `json:"sku"`
	IsVisible    bool              `json:"is_visible"`
	Price        int64             `json:"price"` // minor units
	Ingredients  []Ingredient      `json:"ingredients" gorm:"many2many:item_ingredients;"`
	Allergens    []Allergen        `json:"allergens" gorm:"many2many:item_allergens;"`
	DietaryFlags []DietaryFlag     `json:"dietary_flags" gorm:"many2many:item_dietary_flags;"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Ingredient struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"index"`
	Name     string `json:"name"`
}

type Allergen struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"index"`
	Code     string `json:"code"`
	Name     string `json:"name"`
}

type DietaryFlag struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"index"`
	Code     string `json:"code"`
	Name     string `json:"name"`
}
