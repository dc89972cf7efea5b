package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/bsan5566/food-waste/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// mustCreateProvider inserts a provider or fails the test
func mustCreateProvider(t *testing.T, repo *Repository, name, ptype, city string) *models.Provider {
	t.Helper()
	p, err := repo.CreateProvider(context.Background(), &models.Provider{
		Name: name,
		Type: ptype,
		City: city,
	})
	if err != nil {
		t.Fatalf("Failed to create provider %q: %v", name, err)
	}
	return p
}

// mustCreateReceiver inserts a receiver or fails the test
func mustCreateReceiver(t *testing.T, repo *Repository, name, city string) *models.Receiver {
	t.Helper()
	r, err := repo.CreateReceiver(context.Background(), &models.Receiver{
		Name: name,
		Type: "NGO",
		City: city,
	})
	if err != nil {
		t.Fatalf("Failed to create receiver %q: %v", name, err)
	}
	return r
}

// mustCreateListing inserts a food listing or fails the test
func mustCreateListing(t *testing.T, repo *Repository, l *models.FoodListing) *models.FoodListing {
	t.Helper()
	created, err := repo.CreateListing(context.Background(), l)
	if err != nil {
		t.Fatalf("Failed to create listing %q: %v", l.FoodName, err)
	}
	return created
}

// mustCreateClaim inserts a claim or fails the test
func mustCreateClaim(t *testing.T, repo *Repository, foodID, receiverID int, status string) *models.Claim {
	t.Helper()
	c, err := repo.CreateClaim(context.Background(), &models.Claim{
		FoodID:     foodID,
		ReceiverID: receiverID,
		Status:     status,
		Timestamp:  "2026-08-01 10:00:00",
	})
	if err != nil {
		t.Fatalf("Failed to create claim: %v", err)
	}
	return c
}
