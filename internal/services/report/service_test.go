package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

func setupService(t *testing.T) (*Service, *database.Repository) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	return NewService(repo), repo
}

func seedStore(t *testing.T, repo *database.Repository) {
	t.Helper()
	require.NoError(t, repo.ReplaceAll(context.Background(), &database.Dataset{
		Providers: []*models.Provider{
			{ID: 1, Name: "Alpha Deli", Type: "Restaurant", City: "Austin", Contact: "555-0101"},
			{ID: 2, Name: "Beta Mart", Type: "Grocery Store", City: "Austin"},
			{ID: 3, Name: "Gamma Farms", Type: "Supermarket", City: "Boston"},
		},
		Receivers: []*models.Receiver{
			{ID: 1, Name: "City Shelter", Type: "Shelter", City: "Austin"},
		},
		Listings: []*models.FoodListing{
			{ID: 10, FoodName: "Bread", Quantity: 2, ExpiryDate: "2026-09-10",
				ProviderID: 1, ProviderType: "Restaurant", Location: "Austin",
				FoodType: "Vegetarian", MealType: "Breakfast"},
			{ID: 11, FoodName: "Rice", Quantity: 3, ExpiryDate: "2026-09-15",
				ProviderID: 2, ProviderType: "Grocery Store", Location: "Austin",
				FoodType: "Vegan", MealType: "Lunch"},
		},
		Claims: []*models.Claim{
			{ID: 5, FoodID: 10, ReceiverID: 1, Status: "Completed",
				Timestamp: "2026-08-01 10:00:00"},
		},
	}))
}

func TestRunCoversWholeCatalog(t *testing.T) {
	svc, repo := setupService(t)
	seedStore(t, repo)
	ctx := context.Background()

	opts := Options{City: "Austin", Days: 3, Threshold: 5}
	for _, info := range Catalog() {
		res, err := svc.Run(ctx, info.Name, opts)
		require.NoError(t, err, "report %q should run", info.Name)
		assert.Equal(t, info.Name, res.Name)
		assert.NotEmpty(t, res.Columns, "report %q should declare columns", info.Name)
		for _, row := range res.Rows {
			assert.Len(t, row, len(res.Columns),
				"report %q rows must match its column count", info.Name)
		}
	}
}

func TestRunUnknownReport(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Run(context.Background(), "no-such-report", Options{})
	assert.ErrorIs(t, err, ErrUnknownReport)
	assert.Contains(t, err.Error(), "no-such-report")
}

func TestRunProviderContactsRequiresCity(t *testing.T) {
	svc, repo := setupService(t)
	seedStore(t, repo)
	ctx := context.Background()

	_, err := svc.Run(ctx, "provider-contacts", Options{})
	assert.ErrorIs(t, err, ErrEmptyCity)

	_, err = svc.Run(ctx, "provider-contacts", Options{City: "   "})
	assert.ErrorIs(t, err, ErrEmptyCity)

	res, err := svc.Run(ctx, "provider-contacts", Options{City: "Austin"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Alpha Deli", res.Rows[0][0])
	assert.Equal(t, "555-0101", res.Rows[0][3])
}

func TestRunRejectsNegativeParams(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Run(ctx, "nearing-expiry", Options{Days: -1})
	assert.ErrorIs(t, err, ErrNegativeDays)

	_, err = svc.Run(ctx, "low-stock", Options{Threshold: -1})
	assert.ErrorIs(t, err, ErrNegativeThreshold)
}

func TestRunOverview(t *testing.T) {
	svc, repo := setupService(t)
	seedStore(t, repo)

	res, err := svc.Run(context.Background(), "overview", Options{})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"3", "1", "2", "1"}, res.Rows[0])
}

func TestRunEmptyStoreYieldsEmptyResults(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Run(ctx, "providers-per-city", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)

	// Scalar reports still produce their single row
	res, err = svc.Run(ctx, "total-quantity", Options{})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "0", res.Rows[0][0])
}

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, info := range Catalog() {
		assert.False(t, seen[info.Name], "duplicate report name %q", info.Name)
		seen[info.Name] = true
		assert.NotEmpty(t, info.Description)
	}
}
