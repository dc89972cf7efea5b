package database

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/bsan5566/food-waste/internal/models"
)

// seedReportData builds the scenario shared by the aggregate report tests:
// three providers in two cities, two receivers, three listings and four
// claims with mixed-case statuses.
func seedReportData(t *testing.T, repo *Repository) {
	t.Helper()

	pa1 := mustCreateProvider(t, repo, "Alpha Deli", "Restaurant", "Austin")
	pa2 := mustCreateProvider(t, repo, "Beta Mart", "Grocery Store", "Austin")
	pb := mustCreateProvider(t, repo, "Gamma Farms", "Supermarket", "Boston")

	r1 := mustCreateReceiver(t, repo, "City Shelter", "Austin")
	r2 := mustCreateReceiver(t, repo, "Food Bank", "Boston")

	l1 := mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Bread", Quantity: 10, ExpiryDate: "2026-09-10",
		ProviderID: pa1.ID, ProviderType: pa1.Type,
		Location: "Austin", FoodType: "Vegetarian", MealType: "Breakfast",
	})
	l2 := mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Rice", Quantity: 20, ExpiryDate: "2026-09-15",
		ProviderID: pa2.ID, ProviderType: pa2.Type,
		Location: "Austin", FoodType: "Vegan", MealType: "Lunch",
	})
	mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Milk", Quantity: 5, ExpiryDate: "2026-09-12",
		ProviderID: pb.ID, ProviderType: pb.Type,
		Location: "Boston", FoodType: "Vegetarian", MealType: "Breakfast",
	})

	// Mixed-case statuses must land in the same buckets
	mustCreateClaim(t, repo, l1.ID, r1.ID, "Completed")
	mustCreateClaim(t, repo, l2.ID, r1.ID, "completed")
	mustCreateClaim(t, repo, l2.ID, r1.ID, "COMPLETED")
	mustCreateClaim(t, repo, l2.ID, r2.ID, "Pending")
}

func TestProvidersPerCity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ProvidersPerCity(context.Background())
	if err != nil {
		t.Fatalf("ProvidersPerCity failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(rows))
	}
	if rows[0].City != "Austin" || rows[0].Count != 2 {
		t.Errorf("Expected Austin with 2 providers first, got %s/%d", rows[0].City, rows[0].Count)
	}
	if rows[1].City != "Boston" || rows[1].Count != 1 {
		t.Errorf("Expected Boston with 1 provider, got %s/%d", rows[1].City, rows[1].Count)
	}
}

func TestProvidersPerCityEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)

	rows, err := repo.ProvidersPerCity(context.Background())
	if err != nil {
		t.Fatalf("Empty store should not error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}

func TestTotalAvailableQuantity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)

	total, err := repo.TotalAvailableQuantity(context.Background())
	if err != nil {
		t.Fatalf("TotalAvailableQuantity failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Empty store should report 0, got %d", total)
	}

	seedReportData(t, repo)
	total, err = repo.TotalAvailableQuantity(context.Background())
	if err != nil {
		t.Fatalf("TotalAvailableQuantity failed: %v", err)
	}
	if total != 35 {
		t.Errorf("Expected total quantity 35, got %d", total)
	}
}

func TestClaimsPerFoodItemKeepsZeroClaimFoods(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ClaimsPerFoodItem(context.Background())
	if err != nil {
		t.Fatalf("ClaimsPerFoodItem failed: %v", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.FoodName] = row.Count
	}
	if counts["Rice"] != 3 {
		t.Errorf("Expected 3 claims for Rice, got %d", counts["Rice"])
	}
	if counts["Bread"] != 1 {
		t.Errorf("Expected 1 claim for Bread, got %d", counts["Bread"])
	}
	count, ok := counts["Milk"]
	if !ok {
		t.Fatal("Unclaimed food Milk should still appear in the report")
	}
	if count != 0 {
		t.Errorf("Expected 0 claims for Milk, got %d", count)
	}
}

func TestClaimStatusDistributionMergesCase(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ClaimStatusDistribution(context.Background())
	if err != nil {
		t.Fatalf("ClaimStatusDistribution failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Mixed-case statuses should merge into 2 buckets, got %d", len(rows))
	}
	if rows[0].Status != "completed" || rows[0].Count != 3 {
		t.Errorf("Expected completed/3 first, got %s/%d", rows[0].Status, rows[0].Count)
	}
	if rows[1].Status != "pending" || rows[1].Count != 1 {
		t.Errorf("Expected pending/1, got %s/%d", rows[1].Status, rows[1].Count)
	}
}

func TestClaimCompletionPercentage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ClaimCompletionPercentage(context.Background())
	if err != nil {
		t.Fatalf("ClaimCompletionPercentage failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 status buckets, got %d", len(rows))
	}
	if rows[0].Status != "completed" || math.Abs(rows[0].Percent-75.0) > 0.01 {
		t.Errorf("Expected completed at 75%%, got %s at %.2f", rows[0].Status, rows[0].Percent)
	}
	if rows[1].Status != "pending" || math.Abs(rows[1].Percent-25.0) > 0.01 {
		t.Errorf("Expected pending at 25%%, got %s at %.2f", rows[1].Status, rows[1].Percent)
	}
}

func TestRankedReportsBreakTiesByKeyAscending(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	// Equal counts everywhere; insertion order deliberately reversed so the
	// ordering cannot come from rowids.
	pz := mustCreateProvider(t, repo, "Zeta Deli", "Restaurant", "Boston")
	pa := mustCreateProvider(t, repo, "Acme Mart", "Grocery Store", "Austin")
	r := mustCreateReceiver(t, repo, "City Shelter", "Austin")

	lz := mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Rice", Quantity: 5, ExpiryDate: "2026-09-15",
		ProviderID: pz.ID, ProviderType: pz.Type,
		Location: "Boston", FoodType: "Vegan", MealType: "Lunch",
	})
	la := mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Bread", Quantity: 5, ExpiryDate: "2026-09-10",
		ProviderID: pa.ID, ProviderType: pa.Type,
		Location: "Austin", FoodType: "Vegetarian", MealType: "Breakfast",
	})
	mustCreateClaim(t, repo, lz.ID, r.ID, "Completed")
	mustCreateClaim(t, repo, la.ID, r.ID, "Completed")

	cities, err := repo.ProvidersPerCity(ctx)
	if err != nil {
		t.Fatalf("ProvidersPerCity failed: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(cities))
	}
	if cities[0].City != "Austin" || cities[1].City != "Boston" {
		t.Errorf("Expected tied cities in ascending order [Austin Boston], got [%s %s]",
			cities[0].City, cities[1].City)
	}

	providers, err := repo.CompletedClaimsByProvider(ctx)
	if err != nil {
		t.Fatalf("CompletedClaimsByProvider failed: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name != "Acme Mart" || providers[1].Name != "Zeta Deli" {
		t.Errorf("Expected tied providers in ascending name order [Acme Mart Zeta Deli], got [%s %s]",
			providers[0].Name, providers[1].Name)
	}
}

func TestCompletedClaimsByProvider(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.CompletedClaimsByProvider(context.Background())
	if err != nil {
		t.Fatalf("CompletedClaimsByProvider failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 providers with completed claims, got %d", len(rows))
	}
	// Beta Mart owns Rice (2 completed), Alpha Deli owns Bread (1 completed).
	// Gamma Farms has none and must not appear.
	if rows[0].Name != "Beta Mart" || rows[0].Count != 2 {
		t.Errorf("Expected Beta Mart/2 first, got %s/%d", rows[0].Name, rows[0].Count)
	}
	if rows[1].Name != "Alpha Deli" || rows[1].Count != 1 {
		t.Errorf("Expected Alpha Deli/1, got %s/%d", rows[1].Name, rows[1].Count)
	}
}

func TestAvgQuantityPerReceiver(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.AvgQuantityPerReceiver(context.Background())
	if err != nil {
		t.Fatalf("AvgQuantityPerReceiver failed: %v", err)
	}

	avgs := make(map[string]float64, len(rows))
	for _, row := range rows {
		avgs[row.Name] = row.AvgQuantity
	}
	// City Shelter claimed Bread(10), Rice(20), Rice(20): one row per claim
	if math.Abs(avgs["City Shelter"]-50.0/3.0) > 0.01 {
		t.Errorf("Expected City Shelter average ~16.67, got %.2f", avgs["City Shelter"])
	}
	if math.Abs(avgs["Food Bank"]-20.0) > 0.01 {
		t.Errorf("Expected Food Bank average 20, got %.2f", avgs["Food Bank"])
	}
}

func TestTopClaimingReceivers(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.TopClaimingReceivers(context.Background())
	if err != nil {
		t.Fatalf("TopClaimingReceivers failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 receivers, got %d", len(rows))
	}
	if rows[0].Name != "City Shelter" || rows[0].Count != 3 {
		t.Errorf("Expected City Shelter/3 first, got %s/%d", rows[0].Name, rows[0].Count)
	}
}

func TestClaimsPerMealType(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ClaimsPerMealType(context.Background())
	if err != nil {
		t.Fatalf("ClaimsPerMealType failed: %v", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.MealType] = row.Count
	}
	if counts["Lunch"] != 3 || counts["Breakfast"] != 1 {
		t.Errorf("Expected Lunch/3 and Breakfast/1, got %v", counts)
	}
}

func TestTotalDonatedByProvider(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.TotalDonatedByProvider(context.Background())
	if err != nil {
		t.Fatalf("TotalDonatedByProvider failed: %v", err)
	}
	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Name] = row.TotalQuantity
	}
	if totals["Beta Mart"] != 20 || totals["Alpha Deli"] != 10 || totals["Gamma Farms"] != 5 {
		t.Errorf("Unexpected donation totals: %v", totals)
	}
}

func TestProviderTypeContribution(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ProviderTypeContribution(context.Background())
	if err != nil {
		t.Fatalf("ProviderTypeContribution failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 provider types, got %d", len(rows))
	}
	if rows[0].ProviderType != "Grocery Store" || rows[0].TotalQuantity != 20 {
		t.Errorf("Expected Grocery Store/20 first, got %s/%d",
			rows[0].ProviderType, rows[0].TotalQuantity)
	}
}

func TestProviderContactsByCity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.ProviderContactsByCity(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("ProviderContactsByCity failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 Austin providers, got %d", len(rows))
	}
	if rows[0].Name != "Alpha Deli" {
		t.Errorf("Expected alphabetical order, got %q first", rows[0].Name)
	}

	rows, err = repo.ProviderContactsByCity(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("Unknown city should not error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows for unknown city, got %d", len(rows))
	}
}

func TestListingsNearingExpiryWindow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	p := mustCreateProvider(t, repo, "Corner Cafe", "Restaurant", "Austin")

	today := time.Now()
	soon := today.AddDate(0, 0, 2).Format(models.DateLayout)
	far := today.AddDate(0, 0, 30).Format(models.DateLayout)
	past := today.AddDate(0, 0, -1).Format(models.DateLayout)

	mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Soon", Quantity: 1, ExpiryDate: soon, ProviderID: p.ID, Location: "Austin",
	})
	mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Far", Quantity: 1, ExpiryDate: far, ProviderID: p.ID, Location: "Austin",
	})
	mustCreateListing(t, repo, &models.FoodListing{
		FoodName: "Past", Quantity: 1, ExpiryDate: past, ProviderID: p.ID, Location: "Austin",
	})

	rows, err := repo.ListingsNearingExpiry(ctx, 3)
	if err != nil {
		t.Fatalf("ListingsNearingExpiry failed: %v", err)
	}
	names := make(map[string]bool, len(rows))
	for _, l := range rows {
		names[l.FoodName] = true
	}
	if !names["Soon"] {
		t.Error("Listing expiring in 2 days should be in the 3-day window")
	}
	if names["Far"] {
		t.Error("Listing expiring in 30 days should not be in the 3-day window")
	}

	expired, err := repo.ExpiredListings(ctx)
	if err != nil {
		t.Fatalf("ExpiredListings failed: %v", err)
	}
	if len(expired) != 1 || expired[0].FoodName != "Past" {
		t.Errorf("Expected only the past-dated listing to be expired, got %d rows", len(expired))
	}
}

func TestLowStockListings(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.LowStockListings(context.Background(), 5)
	if err != nil {
		t.Fatalf("LowStockListings failed: %v", err)
	}
	if len(rows) != 1 || rows[0].FoodName != "Milk" {
		t.Errorf("Expected only Milk (quantity 5) at threshold 5, got %d rows", len(rows))
	}
}

func TestPendingClaims(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.PendingClaims(context.Background())
	if err != nil {
		t.Fatalf("PendingClaims failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 pending claim, got %d", len(rows))
	}
	if rows[0].Receiver != "Food Bank" || rows[0].FoodName != "Rice" {
		t.Errorf("Unexpected pending claim row: %+v", rows[0])
	}
}

func TestOverviewCounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	o, err := repo.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if o.Providers != 3 || o.Receivers != 2 || o.Listings != 3 || o.Claims != 4 {
		t.Errorf("Unexpected overview counts: %+v", o)
	}
}

func TestFoodTypeCounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	seedReportData(t, repo)

	rows, err := repo.FoodTypeCounts(context.Background())
	if err != nil {
		t.Fatalf("FoodTypeCounts failed: %v", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.FoodType] = row.Count
	}
	if counts["Vegetarian"] != 2 || counts["Vegan"] != 1 {
		t.Errorf("Unexpected food type counts: %v", counts)
	}
}
