package repositories

import (
	"database/sql"
	"testing"

	"art-gallery-platform/internal/models"

	_ "github.com/lib/pq"
)

func setupCartTestDB(t *testing.T) *sql.DB {
	// This would typically use a test database
	// For now, we'll skip actual database tests and focus on the structure
	t.Skip("Database tests require test database setup")
	return nil
}

func TestCartRepository_AddIncrementsExisting(t *testing.T) {
	db := setupCartTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewCartRepository(db)
	sessionID := "test-session"

	// Three adds for the same entity must collapse into one row of quantity 3
	for i := 0; i < 3; i++ {
		if err := repo.Add(sessionID, models.ItemTypeArtwork, 1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	items, err := repo.ListBySession(sessionID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestCartRepository_SetQuantityZeroRemoves(t *testing.T) {
	db := setupCartTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewCartRepository(db)
	sessionID := "test-session"

	if err := repo.Add(sessionID, models.ItemTypeEvent, 7); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := repo.ListBySession(sessionID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}

	for _, quantity := range []int{0, -1} {
		if err := repo.SetQuantity(items[0].ID, quantity); err != nil {
			t.Fatalf("SetQuantity(%d) error = %v", quantity, err)
		}

		remaining, err := repo.ListBySession(sessionID)
		if err != nil {
			t.Fatalf("ListBySession() error = %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("after SetQuantity(%d): got %d items, want 0", quantity, len(remaining))
		}
	}
}

func TestCartRepository_RemoveMissingIsNoOp(t *testing.T) {
	db := setupCartTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewCartRepository(db)

	if err := repo.Remove(99999); err != nil {
		t.Errorf("Remove() on missing id should be a no-op, got error %v", err)
	}
}
