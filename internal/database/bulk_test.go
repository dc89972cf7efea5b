package database

import (
	"context"
	"testing"

	"github.com/bsan5566/food-waste/internal/models"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Providers: []*models.Provider{
			{ID: 1, Name: "Alpha Deli", Type: "Restaurant", City: "Austin"},
			{ID: 2, Name: "Beta Mart", Type: "Grocery Store", City: "Austin"},
			{ID: 3, Name: "Gamma Farms", Type: "Supermarket", City: "Boston"},
		},
		Receivers: []*models.Receiver{
			{ID: 1, Name: "City Shelter", Type: "Shelter", City: "Austin"},
		},
		Listings: []*models.FoodListing{
			{ID: 10, FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
				ProviderID: 1, ProviderType: "Restaurant", Location: "Austin"},
			{ID: 11, FoodName: "Rice", Quantity: 3, ExpiryDate: "2026-09-15",
				ProviderID: 2, ProviderType: "Grocery Store", Location: "Austin"},
		},
		Claims: []*models.Claim{
			{ID: 5, FoodID: 10, ReceiverID: 1, Status: "Completed",
				Timestamp: "2026-08-01 10:00:00"},
		},
	}
}

func TestReplaceAllRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, sampleDataset()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	// Source IDs are preserved
	p, err := repo.GetProviderByID(ctx, 3)
	if err != nil {
		t.Fatalf("Provider 3 should exist after load: %v", err)
	}
	if p.Name != "Gamma Farms" {
		t.Errorf("Expected Gamma Farms for ID 3, got %q", p.Name)
	}
	l, err := repo.GetListingByID(ctx, 11)
	if err != nil {
		t.Fatalf("Listing 11 should exist after load: %v", err)
	}
	if l.FoodName != "Rice" {
		t.Errorf("Expected Rice for ID 11, got %q", l.FoodName)
	}

	// Aggregates over the loaded data
	cities, err := repo.ProvidersPerCity(ctx)
	if err != nil {
		t.Fatalf("ProvidersPerCity failed: %v", err)
	}
	if len(cities) != 2 || cities[0].City != "Austin" || cities[0].Count != 2 ||
		cities[1].City != "Boston" || cities[1].Count != 1 {
		t.Errorf("Unexpected city counts after load: %+v", cities)
	}

	total, err := repo.TotalAvailableQuantity(ctx)
	if err != nil {
		t.Fatalf("TotalAvailableQuantity failed: %v", err)
	}
	if total != 5 {
		t.Errorf("Expected total quantity 5, got %d", total)
	}

	completed, err := repo.CompletedClaimsByProvider(ctx)
	if err != nil {
		t.Fatalf("CompletedClaimsByProvider failed: %v", err)
	}
	if len(completed) != 1 || completed[0].Name != "Alpha Deli" || completed[0].Count != 1 {
		t.Errorf("Expected Alpha Deli with 1 completed claim, got %+v", completed)
	}
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, sampleDataset()); err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, sampleDataset()); err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	o, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if o.Providers != 3 || o.Receivers != 1 || o.Listings != 2 || o.Claims != 1 {
		t.Errorf("Re-running a load must replace, not append: %+v", o)
	}
}

func TestReplaceAllOverwritesExistingData(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	old := mustCreateProvider(t, repo, "Old Provider", "Restaurant", "Elsewhere")

	if err := repo.ReplaceAll(ctx, sampleDataset()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	providers, err := repo.GetAllProviders(ctx)
	if err != nil {
		t.Fatalf("GetAllProviders failed: %v", err)
	}
	for _, p := range providers {
		if p.Name == "Old Provider" && p.ID == old.ID {
			t.Fatal("Pre-existing rows should be gone after a load")
		}
	}
	if len(providers) != 3 {
		t.Errorf("Expected exactly the 3 loaded providers, got %d", len(providers))
	}
}

func TestReplaceAllRejectsBrokenReference(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	ds := sampleDataset()
	ds.Listings = append(ds.Listings, &models.FoodListing{
		ID: 99, FoodName: "Orphan", Quantity: 1, ExpiryDate: "2026-09-10",
		ProviderID: 42, Location: "Austin",
	})

	if err := repo.ReplaceAll(ctx, ds); err == nil {
		t.Fatal("Load with a dangling provider reference should fail")
	}

	// The failed load must leave the store empty, not partially written
	o, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if o.Providers != 0 || o.Listings != 0 {
		t.Errorf("Failed load should roll back completely: %+v", o)
	}
}
