// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/bsan5566/food-waste/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services, CLI and TUI. This interface enables mocking for unit testing.
type DataStore interface {
	// Providers
	CreateProvider(ctx context.Context, p *models.Provider) (*models.Provider, error)
	GetProviderByID(ctx context.Context, id int) (*models.Provider, error)
	GetAllProviders(ctx context.Context) ([]*models.Provider, error)
	UpdateProvider(ctx context.Context, p *models.Provider) error
	DeleteProvider(ctx context.Context, id int) error
	CountListingsByProvider(ctx context.Context, providerID int) (int, error)

	// Receivers
	CreateReceiver(ctx context.Context, rec *models.Receiver) (*models.Receiver, error)
	GetReceiverByID(ctx context.Context, id int) (*models.Receiver, error)
	GetAllReceivers(ctx context.Context) ([]*models.Receiver, error)
	UpdateReceiver(ctx context.Context, rec *models.Receiver) error
	DeleteReceiver(ctx context.Context, id int) error
	CountClaimsByReceiver(ctx context.Context, receiverID int) (int, error)

	// Food listings
	CreateListing(ctx context.Context, l *models.FoodListing) (*models.FoodListing, error)
	GetListingByID(ctx context.Context, id int) (*models.FoodListing, error)
	GetAllListings(ctx context.Context) ([]*models.FoodListing, error)
	FilterListings(ctx context.Context, f models.ListingFilter) ([]*models.FoodListing, error)
	GetRecentListings(ctx context.Context, limit int) ([]*models.FoodListing, error)
	UpdateListing(ctx context.Context, l *models.FoodListing) error
	DeleteListing(ctx context.Context, id int) error
	CountClaimsByListing(ctx context.Context, foodID int) (int, error)

	// Claims
	CreateClaim(ctx context.Context, c *models.Claim) (*models.Claim, error)
	GetClaimByID(ctx context.Context, id int) (*models.Claim, error)
	GetAllClaims(ctx context.Context) ([]*models.Claim, error)
	UpdateClaim(ctx context.Context, c *models.Claim) error
	DeleteClaim(ctx context.Context, id int) error

	// Bulk load
	ReplaceAll(ctx context.Context, ds *Dataset) error

	// Reports
	ReportStore
}

// ReportStore is the read-only report catalog. The TUI and the report
// service depend on this subset only.
type ReportStore interface {
	ProvidersPerCity(ctx context.Context) ([]*models.CityCount, error)
	ReceiversPerCity(ctx context.Context) ([]*models.CityCount, error)
	ListingsPerCity(ctx context.Context) ([]*models.CityCount, error)
	ProviderTypeContribution(ctx context.Context) ([]*models.TypeQuantity, error)
	ProviderContactsByCity(ctx context.Context, city string) ([]*models.ProviderContact, error)
	TopClaimingReceivers(ctx context.Context) ([]*models.NameCount, error)
	TotalAvailableQuantity(ctx context.Context) (int, error)
	FoodTypeCounts(ctx context.Context) ([]*models.FoodTypeCount, error)
	ClaimsPerFoodItem(ctx context.Context) ([]*models.FoodClaimCount, error)
	CompletedClaimsByProvider(ctx context.Context) ([]*models.NameCount, error)
	ClaimStatusDistribution(ctx context.Context) ([]*models.StatusCount, error)
	ClaimCompletionPercentage(ctx context.Context) ([]*models.StatusPercent, error)
	AvgQuantityPerReceiver(ctx context.Context) ([]*models.NameAverage, error)
	ClaimsPerMealType(ctx context.Context) ([]*models.MealTypeCount, error)
	TotalDonatedByProvider(ctx context.Context) ([]*models.NameQuantity, error)
	ListingsNearingExpiry(ctx context.Context, days int) ([]*models.FoodListing, error)
	ExpiredListings(ctx context.Context) ([]*models.FoodListing, error)
	LowStockListings(ctx context.Context, threshold int) ([]*models.FoodListing, error)
	PendingClaims(ctx context.Context) ([]*models.PendingClaim, error)
	Overview(ctx context.Context) (*models.Overview, error)
}
