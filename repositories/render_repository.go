package repositories

import (
	"errors"
	"fmt"

	"menu-catalog/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RenderRepository builds the guest-facing view of a location: every menu
// currently published there, enabled lines only, text resolved through the
// locale fallback chain. It never writes.
type RenderRepository struct {
	db *gorm.DB
}

func NewRenderRepository(db *gorm.DB) *RenderRepository {
	return &RenderRepository{db: db}
}

type RenderedItem struct {
	LineID      uint   `json:"line_id"`
	ItemID      uint   `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
}

type RenderedSection struct {
	LineID      uint   `json:"line_id"`
	SectionID   uint   `json:"section_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// An enabled section with no enabled children renders as an empty list,
	// not as an omitted section.
	Items []RenderedItem `json:"items"`
}

type RenderedMenu struct {
	MenuID      uint              `json:"menu_id"`
	Code        string            `json:"code"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Sections    []RenderedSection `json:"sections"`
	Items       []RenderedItem    `json:"items"` // bare top-level item lines
}

// RenderMenu assembles all currently published menus of a location in the
// requested locale. Fallback chain per text field: requested locale, tenant
// default locale, first available translation.
func (r *RenderRepository) RenderMenu(tenantID, locationID uint, locale string) ([]RenderedMenu, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, tenantID).Error; err != nil {
		return nil, fmt.Errorf("%w: tenant %d", ErrNotFound, tenantID)
	}

	var location models.Location
	if err := r.db.Where("id = ? AND tenant_id = ?", locationID, tenantID).First(&location).Error; err != nil {
		return nil, fmt.Errorf("%w: location %d", ErrNotFound, locationID)
	}

	var pubs []models.MenuPublication
	err := r.db.
		Where("tenant_id = ? AND location_id = ? AND is_current = ?", tenantID, locationID, true).
		Order("activated_at asc").
		Find(&pubs).Error
	if err != nil {
		return nil, err
	}

	rendered := make([]RenderedMenu, 0, len(pubs))
	for _, pub := range pubs {
		menu, err := r.renderOne(tenantID, pub.MenuID, locale, tenant.DefaultLocale)
		if err != nil {
			// A publication whose menu is gone must not take down the
			// whole location; the remaining menus still render.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		rendered = append(rendered, *menu)
	}
	return rendered, nil
}

func (r *RenderRepository) renderOne(tenantID, menuID uint, locale, defaultLocale string) (*RenderedMenu, error) {
	var menu models.Menu
	if err := r.db.Where("id = ? AND tenant_id = ?", menuID, tenantID).First(&menu).Error; err != nil {
		return nil, fmt.Errorf("%w: menu %d", ErrNotFound, menuID)
	}

	var lines []models.MenuLine
	err := r.db.Preload("Item").
		Where("menu_id = ? AND is_enabled = ?", menuID, true).
		Order("display_order asc").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	texts, err := r.loadTranslations(tenantID, menuID, lines)
	if err != nil {
		return nil, err
	}
	resolve := func(entityType string, entityID uint, field string) string {
		return texts.resolve(entityType, entityID, field, locale, defaultLocale)
	}

	out := RenderedMenu{
		MenuID:      menu.ID,
		Code:        menu.Code,
		Currency:    menu.Currency,
		Name:        resolve(models.EntityMenu, menu.ID, models.FieldName),
		Description: resolve(models.EntityMenu, menu.ID, models.FieldDescription),
		Sections:    []RenderedSection{},
		Items:       []RenderedItem{},
	}

	children := make(map[uint][]models.MenuLine)
	for _, line := range lines {
		if line.ParentLineID != nil {
			children[*line.ParentLineID] = append(children[*line.ParentLineID], line)
		}
	}

	itemView := func(line models.MenuLine) RenderedItem {
		view := RenderedItem{
			LineID:   line.ID,
			Currency: menu.Currency,
		}
		if line.Item != nil {
			view.ItemID = line.Item.ID
			view.Price = line.Item.Price
			view.Name = resolve(models.EntityItem, line.Item.ID, models.FieldName)
			view.Description = resolve(models.EntityItem, line.Item.ID, models.FieldDescription)
		}
		return view
	}

	for _, line := range lines {
		if line.ParentLineID != nil {
			continue
		}
		switch line.LineType {
		case models.LineTypeSection:
			section := RenderedSection{
				LineID: line.ID,
				Items:  []RenderedItem{},
			}
			if line.SectionID != nil {
				section.SectionID = *line.SectionID
				section.Title = resolve(models.EntitySection, *line.SectionID, models.FieldName)
				section.Description = resolve(models.EntitySection, *line.SectionID, models.FieldDescription)
			}
			kids := children[line.ID]
			slices.SortFunc(kids, func(a, b models.MenuLine) int {
				return a.DisplayOrder - b.DisplayOrder
			})
			for _, child := range kids {
				section.Items = append(section.Items, itemView(child))
			}
			out.Sections = append(out.Sections, section)
		case models.LineTypeItem:
			out.Items = append(out.Items, itemView(line))
		}
	}
	return &out, nil
}

type translationSet map[string][]models.Translation

func translationKey(entityType string, entityID uint, field string) string {
	return fmt.Sprintf("%s/%d/%s", entityType, entityID, field)
}

func (r *RenderRepository) loadTranslations(tenantID, menuID uint, lines []models.MenuLine) (translationSet, error) {
	sectionIDs := []uint{}
	itemIDs := []uint{}
	for _, line := range lines {
		if line.SectionID != nil {
			sectionIDs = append(sectionIDs, *line.SectionID)
		}
		if line.ItemID != nil {
			itemIDs = append(itemIDs, *line.ItemID)
		}
	}

	var rows []models.Translation
	query := r.db.Where("tenant_id = ?", tenantID).Where(
		r.db.Where("entity_type = ? AND entity_id = ?", models.EntityMenu, menuID).
			Or("entity_type = ? AND entity_id IN ?", models.EntitySection, sectionIDs).
			Or("entity_type = ? AND entity_id IN ?", models.EntityItem, itemIDs),
	)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	set := make(translationSet)
	for _, row := range rows {
		key := translationKey(row.EntityType, row.EntityID, row.Field)
		set[key] = append(set[key], row)
	}
	return set, nil
}

func (t translationSet) resolve(entityType string, entityID uint, field, locale, defaultLocale string) string {
	candidates := t[translationKey(entityType, entityID, field)]
	if len(candidates) == 0 {
		return ""
	}
	for _, c := range candidates {
		if c.Locale == locale {
			return c.Text
		}
	}
	for _, c := range candidates {
		if c.Locale == defaultLocale {
			return c.Text
		}
	}
	return candidates[0].Text
}
