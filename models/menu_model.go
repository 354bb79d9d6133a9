package models

import "gorm.io/gorm"

const (
	MenuStatusDraft     = "draft"
	MenuStatusPublished = "published"
)

const (
	LineTypeSection = "section"
	LineTypeItem    = "item"
)

type Menu struct {
	gorm.Model
	TenantID  uint       `json:"tenant_id" gorm:"uniqueIndex:idx_menu_tenant_code"`
	Code      string     `json:"code" gorm:"uniqueIndex:idx_menu_tenant_code"`
	Status    string     `json:"status"`
	Currency  string     `json:"currency" gorm:"default:EUR"`
	Lines     []MenuLine `json:"lines" gorm:"foreignKey:MenuID"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// MenuLine places a Section or Item inside one menu. Exactly one of
// SectionID/ItemID is set, matching LineType. ParentLineID may only point at
// a section line of the same menu, so the tree is at most two levels deep.
type MenuLine struct {
	gorm.Model
	TenantID     uint       `json:"tenant_id" gorm:"index"`
	MenuID       uint       `json:"menu_id" gorm:"index"`
	LineType     string     `json:"line_type"`
	SectionID    *uint      `json:"section_id"`
	ItemID       *uint      `json:"item_id"`
	ParentLineID *uint      `json:"parent_line_id"`
	DisplayOrder int        `json:"display_order"`
	IsEnabled    bool       `json:"is_enabled"`
	Section      *Section   `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	Item         *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Children     []MenuLine `json:"children,omitempty" gorm:"foreignKey:ParentLineID"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
