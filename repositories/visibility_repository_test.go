package repositories

import (
	"errors"
	"testing"

	"menu-catalog/models"
)

func TestToggleItemLine_CascadesAcrossAllMenus(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	m1 := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	m2 := seedMenu(t, db, tenant.ID, "M2", models.MenuStatusPublished)
	item := seedItem(t, db, tenant.ID, true, 500)
	lineM1 := seedItemLine(t, db, m1, item, nil, 0, true)
	lineM2 := seedItemLine(t, db, m2, item, nil, 0, true)
	repo := NewVisibilityRepository(db)

	result, err := repo.ToggleLine(tenant.ID, m1.ID, lineM1.ID, 1)
	if err != nil {
		t.Fatalf("ToggleLine: %v", err)
	}
	if result.NewState {
		t.Error("new state = true, want false")
	}
	if result.AffectedLines != 2 {
		t.Errorf("affected lines = %d, want 2", result.AffectedLines)
	}

	var reloaded models.Item
	db.First(&reloaded, item.ID)
	if reloaded.IsVisible {
		t.Error("item should be globally hidden after toggle")
	}
	if reloadLine(t, db, lineM1.ID).IsEnabled {
		t.Error("line in M1 should be disabled")
	}
	if reloadLine(t, db, lineM2.ID).IsEnabled {
		t.Error("line in M2 should be disabled too: the cascade is global")
	}

	// Toggling back re-enables every placement.
	if _, err := repo.ToggleLine(tenant.ID, m1.ID, lineM1.ID, 1); err != nil {
		t.Fatalf("ToggleLine back: %v", err)
	}
	if !reloadLine(t, db, lineM2.ID).IsEnabled {
		t.Error("line in M2 should be enabled again")
	}
}

func TestToggleSectionLine_DisableThenEnableFiltersHiddenItems(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	section := seedSection(t, db, tenant.ID)
	visible := seedItem(t, db, tenant.ID, true, 500)
	hidden := seedItem(t, db, tenant.ID, false, 300)
	sectionLine := seedSectionLine(t, db, menu, section, 0, true)
	lineA := seedItemLine(t, db, menu, visible, &sectionLine.ID, 0, true)
	lineB := seedItemLine(t, db, menu, hidden, &sectionLine.ID, 1, true)
	repo := NewVisibilityRepository(db)

	// Disable: every child goes down, visibility notwithstanding.
	result, err := repo.ToggleLine(tenant.ID, menu.ID, sectionLine.ID, 1)
	if err != nil {
		t.Fatalf("ToggleLine disable: %v", err)
	}
	if result.NewState {
		t.Fatal("new state = true, want false")
	}
	if reloadLine(t, db, lineA.ID).IsEnabled || reloadLine(t, db, lineB.ID).IsEnabled {
		t.Error("both children should be disabled")
	}

	// Re-enable: only children with a globally visible item come back.
	result, err = repo.ToggleLine(tenant.ID, menu.ID, sectionLine.ID, 1)
	if err != nil {
		t.Fatalf("ToggleLine enable: %v", err)
	}
	if !result.NewState {
		t.Fatal("new state = false, want true")
	}
	if !reloadLine(t, db, lineA.ID).IsEnabled {
		t.Error("child with visible item should be re-enabled")
	}
	if reloadLine(t, db, lineB.ID).IsEnabled {
		t.Error("child with hidden item must stay disabled")
	}
	if result.SkippedChildren != 1 {
		t.Errorf("skipped children = %d, want 1", result.SkippedChildren)
	}
}

func TestToggleSectionLine_ScopedToOneMenu(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	m1 := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	m2 := seedMenu(t, db, tenant.ID, "M2", models.MenuStatusDraft)
	section := seedSection(t, db, tenant.ID)
	lineM1 := seedSectionLine(t, db, m1, section, 0, true)
	lineM2 := seedSectionLine(t, db, m2, section, 0, true)
	repo := NewVisibilityRepository(db)

	if _, err := repo.ToggleLine(tenant.ID, m1.ID, lineM1.ID, 1); err != nil {
		t.Fatalf("ToggleLine: %v", err)
	}

	if reloadLine(t, db, lineM1.ID).IsEnabled {
		t.Error("toggled section line should be disabled")
	}
	if !reloadLine(t, db, lineM2.ID).IsEnabled {
		t.Error("the same section in another menu must not be touched")
	}

	var reloaded models.Section
	db.First(&reloaded, section.ID)
	if !reloaded.IsActive {
		t.Error("the Section entity must not be touched by a per-menu toggle")
	}
}

func TestToggleSectionLine_NoChildrenIsValidNoop(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	section := seedSection(t, db, tenant.ID)
	sectionLine := seedSectionLine(t, db, menu, section, 0, true)
	repo := NewVisibilityRepository(db)

	result, err := repo.ToggleLine(tenant.ID, menu.ID, sectionLine.ID, 1)
	if err != nil {
		t.Fatalf("ToggleLine on empty section: %v", err)
	}
	if result.AffectedLines != 0 || result.SkippedChildren != 0 {
		t.Errorf("affected = %d, skipped = %d, want 0/0", result.AffectedLines, result.SkippedChildren)
	}
}

func TestToggleLine_NotFound(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	repo := NewVisibilityRepository(db)

	if _, err := repo.ToggleLine(tenant.ID, menu.ID, 42, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleLine error = %v, want ErrNotFound", err)
	}
}

func TestSetSectionActive_UnconditionalAcrossMenus(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	m1 := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	m2 := seedMenu(t, db, tenant.ID, "M2", models.MenuStatusPublished)
	section := seedSection(t, db, tenant.ID)
	hidden := seedItem(t, db, tenant.ID, false, 300)
	lineM1 := seedSectionLine(t, db, m1, section, 0, true)
	lineM2 := seedSectionLine(t, db, m2, section, 0, true)
	childM1 := seedItemLine(t, db, m1, hidden, &lineM1.ID, 0, true)
	childM2 := seedItemLine(t, db, m2, hidden, &lineM2.ID, 0, true)
	repo := NewVisibilityRepository(db)

	result, err := repo.SetSectionActive(tenant.ID, section.ID, false, 1)
	if err != nil {
		t.Fatalf("SetSectionActive(false): %v", err)
	}
	if result.SectionLines != 2 {
		t.Errorf("section lines = %d, want 2", result.SectionLines)
	}
	if result.ChildLines != 2 {
		t.Errorf("child lines = %d, want 2", result.ChildLines)
	}
	for _, id := range []uint{lineM1.ID, lineM2.ID, childM1.ID, childM2.ID} {
		if reloadLine(t, db, id).IsEnabled {
			t.Errorf("line %d should be disabled", id)
		}
	}

	// Re-activating enables even children whose item is globally hidden:
	// this path has no visibility filter, unlike a per-menu section toggle.
	if _, err := repo.SetSectionActive(tenant.ID, section.ID, true, 1); err != nil {
		t.Fatalf("SetSectionActive(true): %v", err)
	}
	for _, id := range []uint{lineM1.ID, lineM2.ID, childM1.ID, childM2.ID} {
		if !reloadLine(t, db, id).IsEnabled {
			t.Errorf("line %d should be enabled", id)
		}
	}
}

func TestSetSectionActive_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	section := seedSection(t, db, tenant.ID)
	item := seedItem(t, db, tenant.ID, true, 500)
	sectionLine := seedSectionLine(t, db, menu, section, 0, false)
	child := seedItemLine(t, db, menu, item, &sectionLine.ID, 0, false)
	repo := NewVisibilityRepository(db)

	for i := 0; i < 2; i++ {
		if _, err := repo.SetSectionActive(tenant.ID, section.ID, true, 1); err != nil {
			t.Fatalf("SetSectionActive run %d: %v", i+1, err)
		}
	}

	var reloaded models.Section
	db.First(&reloaded, section.ID)
	if !reloaded.IsActive {
		t.Error("section should be active")
	}
	if !reloadLine(t, db, sectionLine.ID).IsEnabled || !reloadLine(t, db, child.ID).IsEnabled {
		t.Error("lines should be enabled after repeated activation")
	}
}

func TestSetSectionActive_NotFound(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	repo := NewVisibilityRepository(db)

	if _, err := repo.SetSectionActive(tenant.ID, 42, true, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetSectionActive error = %v, want ErrNotFound", err)
	}
}
