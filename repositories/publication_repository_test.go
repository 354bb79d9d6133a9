package repositories

import (
	"errors"
	"testing"

	"menu-catalog/models"
)

func TestActivate_RequiresPublishedMenu(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	location := seedLocation(t, db, tenant.ID, "L1")
	draft := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusDraft)
	repo := NewPublicationRepository(db)

	if _, err := repo.Activate(tenant.ID, location.ID, draft.ID, 1); !errors.Is(err, ErrMenuNotPublished) {
		t.Errorf("Activate error = %v, want ErrMenuNotPublished", err)
	}

	var count int64
	db.Model(&models.MenuPublication{}).Count(&count)
	if count != 0 {
		t.Errorf("publications = %d, want none", count)
	}
}

func TestActivate_LeavesSiblingPublicationsCurrent(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	location := seedLocation(t, db, tenant.ID, "L1")
	lunch := seedMenu(t, db, tenant.ID, "LUNCH", models.MenuStatusPublished)
	dinner := seedMenu(t, db, tenant.ID, "DINNER", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	if _, err := repo.Activate(tenant.ID, location.ID, lunch.ID, 1); err != nil {
		t.Fatalf("Activate lunch: %v", err)
	}
	if _, err := repo.Activate(tenant.ID, location.ID, dinner.ID, 1); err != nil {
		t.Fatalf("Activate dinner: %v", err)
	}

	pubs, err := repo.CurrentPublications(tenant.ID, location.ID)
	if err != nil {
		t.Fatalf("CurrentPublications: %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("current publications = %d, want 2 (activation is non-exclusive)", len(pubs))
	}
}

func TestActivate_ReusesExistingPublication(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	location := seedLocation(t, db, tenant.ID, "L1")
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	first, err := repo.Activate(tenant.ID, location.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("first Activate: %v", err)
	}
	if _, err := repo.Deactivate(tenant.ID, first.ID, 1); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	second, err := repo.Activate(tenant.ID, location.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("second Activate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second activation created a new row (id %d), want reuse of %d", second.ID, first.ID)
	}
	if second.RetiredAt != nil {
		t.Error("reactivated publication should have retired_at cleared")
	}

	var count int64
	db.Model(&models.MenuPublication{}).Count(&count)
	if count != 1 {
		t.Errorf("publications = %d, want 1", count)
	}
}

func TestSetCurrent_RetiresSiblings(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	location := seedLocation(t, db, tenant.ID, "L1")
	lunch := seedMenu(t, db, tenant.ID, "LUNCH", models.MenuStatusPublished)
	dinner := seedMenu(t, db, tenant.ID, "DINNER", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	lunchPub, err := repo.Activate(tenant.ID, location.ID, lunch.ID, 1)
	if err != nil {
		t.Fatalf("Activate lunch: %v", err)
	}
	dinnerPub, err := repo.Activate(tenant.ID, location.ID, dinner.ID, 1)
	if err != nil {
		t.Fatalf("Activate dinner: %v", err)
	}

	if _, err := repo.SetCurrent(tenant.ID, dinnerPub.ID, true, 1); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}

	pubs, err := repo.CurrentPublications(tenant.ID, location.ID)
	if err != nil {
		t.Fatalf("CurrentPublications: %v", err)
	}
	if len(pubs) != 1 || pubs[0].ID != dinnerPub.ID {
		t.Fatalf("current publications = %+v, want only the dinner publication", pubs)
	}

	var retired models.MenuPublication
	db.First(&retired, lunchPub.ID)
	if retired.IsCurrent {
		t.Error("lunch publication should have been retired")
	}
	if retired.RetiredAt == nil {
		t.Error("retired publication should record retired_at")
	}
}

func TestSetCurrent_DoesNotRetireOtherLocations(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	l1 := seedLocation(t, db, tenant.ID, "L1")
	l2 := seedLocation(t, db, tenant.ID, "L2")
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusPublished)
	other := seedMenu(t, db, tenant.ID, "M2", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	if _, err := repo.Activate(tenant.ID, l2.ID, other.ID, 1); err != nil {
		t.Fatalf("Activate at L2: %v", err)
	}
	pub, err := repo.Activate(tenant.ID, l1.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("Activate at L1: %v", err)
	}
	if _, err := repo.SetCurrent(tenant.ID, pub.ID, true, 1); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}

	pubs, err := repo.CurrentPublications(tenant.ID, l2.ID)
	if err != nil {
		t.Fatalf("CurrentPublications L2: %v", err)
	}
	if len(pubs) != 1 {
		t.Fatalf("L2 current publications = %d, want 1 (exclusivity is per location)", len(pubs))
	}
}

func TestDeactivate_RemovesFromCurrentSet(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	location := seedLocation(t, db, tenant.ID, "L1")
	menu := seedMenu(t, db, tenant.ID, "M1", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	pub, err := repo.Activate(tenant.ID, location.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if _, err := repo.Deactivate(tenant.ID, pub.ID, 1); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	pubs, err := repo.CurrentPublications(tenant.ID, location.ID)
	if err != nil {
		t.Fatalf("CurrentPublications: %v", err)
	}
	if len(pubs) != 0 {
		t.Fatalf("current publications = %d, want 0", len(pubs))
	}

	// History row survives deactivation.
	var row models.MenuPublication
	if err := db.First(&row, pub.ID).Error; err != nil {
		t.Fatalf("publication row should remain: %v", err)
	}
	if row.RetiredAt == nil {
		t.Error("deactivated publication should record retired_at")
	}
}

func TestSetCurrent_NotFound(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	repo := NewPublicationRepository(db)

	if _, err := repo.SetCurrent(tenant.ID, 42, true, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetCurrent error = %v, want ErrNotFound", err)
	}
}

func TestActivate_WrongTenantLocation(t *testing.T) {
	db := setupTestDB(t)
	t1 := seedTenant(t, db)
	t2 := models.Tenant{Code: "T2", Name: "Other Tenant", DefaultLocale: "en"}
	if err := db.Create(&t2).Error; err != nil {
		t.Fatalf("seed second tenant: %v", err)
	}
	foreign := seedLocation(t, db, t2.ID, "L9")
	menu := seedMenu(t, db, t1.ID, "M1", models.MenuStatusPublished)
	repo := NewPublicationRepository(db)

	if _, err := repo.Activate(t1.ID, foreign.ID, menu.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Activate error = %v, want ErrNotFound for foreign location", err)
	}
}
