package listing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	return NewService(repo), repo
}

func createTestProvider(t *testing.T, repo *database.Repository, name, ptype string) *models.Provider {
	t.Helper()
	p, err := repo.CreateProvider(context.Background(), &models.Provider{
		Name: name, Type: ptype, City: "Austin",
	})
	require.NoError(t, err)
	return p
}

func TestFilterListingsTrimsFields(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p := createTestProvider(t, repo, "Alpha Deli", "Restaurant")

	_, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, Location: "Austin", FoodType: "Vegan", MealType: "Breakfast",
	})
	require.NoError(t, err)
	_, err = svc.CreateListing(ctx, CreateRequest{
		FoodName: "Soup", Quantity: 4, ExpiryDate: "2026-09-11",
		ProviderID: p.ID, Location: "Boston", FoodType: "Vegetarian", MealType: "Lunch",
	})
	require.NoError(t, err)

	listings, err := svc.FilterListings(ctx, models.ListingFilter{City: "  Austin "})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Bread", listings[0].FoodName)

	// Whitespace-only fields match everything
	listings, err = svc.FilterListings(ctx, models.ListingFilter{FoodType: "   "})
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestCreateListingDenormalizesProviderType(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p := createTestProvider(t, repo, "Alpha Deli", "Restaurant")

	l, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, Location: "Austin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Restaurant", l.ProviderType)

	// An explicit provider type wins over the denormalized one
	l2, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Cake", Quantity: 1, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, ProviderType: "Bakery", Location: "Austin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bakery", l2.ProviderType)
}

func TestCreateListingValidation(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p := createTestProvider(t, repo, "Alpha Deli", "Restaurant")

	_, err := svc.CreateListing(ctx, CreateRequest{
		Quantity: 2, ExpiryDate: "2026-09-10", ProviderID: p.ID, Location: "Austin",
	})
	assert.ErrorIs(t, err, ErrEmptyFoodName)

	_, err = svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10", ProviderID: p.ID,
	})
	assert.ErrorIs(t, err, ErrEmptyLocation)

	_, err = svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: -1, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, Location: "Austin",
	})
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "09/10/2026",
		ProviderID: p.ID, Location: "Austin",
	})
	assert.ErrorIs(t, err, ErrInvalidExpiryDate)

	_, err = svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: 999, Location: "Austin",
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdateListingReassignsProvider(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p1 := createTestProvider(t, repo, "Alpha Deli", "Restaurant")
	p2 := createTestProvider(t, repo, "Beta Mart", "Grocery Store")

	l, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: p1.ID, Location: "Austin",
	})
	require.NoError(t, err)

	// Moving the listing to another provider refreshes the denormalized type
	require.NoError(t, svc.UpdateListing(ctx, UpdateRequest{ID: l.ID, ProviderID: &p2.ID}))

	got, err := svc.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, p2.ID, got.ProviderID)
	assert.Equal(t, "Grocery Store", got.ProviderType)

	bad := 999
	err = svc.UpdateListing(ctx, UpdateRequest{ID: l.ID, ProviderID: &bad})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdateListingPartial(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p := createTestProvider(t, repo, "Alpha Deli", "Restaurant")
	l, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, Location: "Austin", MealType: "Breakfast",
	})
	require.NoError(t, err)

	q := 7
	require.NoError(t, svc.UpdateListing(ctx, UpdateRequest{ID: l.ID, Quantity: &q}))

	got, err := svc.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, "Bread", got.FoodName)
	assert.Equal(t, "Breakfast", got.MealType)

	badDate := "soon"
	err = svc.UpdateListing(ctx, UpdateRequest{ID: l.ID, ExpiryDate: &badDate})
	assert.ErrorIs(t, err, ErrInvalidExpiryDate)
}

func TestDeleteListingWithClaims(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	p := createTestProvider(t, repo, "Alpha Deli", "Restaurant")
	l, err := svc.CreateListing(ctx, CreateRequest{
		FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
		ProviderID: p.ID, Location: "Austin",
	})
	require.NoError(t, err)

	r, err := repo.CreateReceiver(ctx, &models.Receiver{Name: "City Shelter", City: "Austin"})
	require.NoError(t, err)
	_, err = repo.CreateClaim(ctx, &models.Claim{
		FoodID: l.ID, ReceiverID: r.ID,
		Status: models.StatusPending, Timestamp: "2026-08-01 10:00:00",
	})
	require.NoError(t, err)

	err = svc.DeleteListing(ctx, l.ID)
	assert.ErrorIs(t, err, ErrHasClaims)

	assert.ErrorIs(t, svc.DeleteListing(ctx, 999), ErrNotFound)
}
