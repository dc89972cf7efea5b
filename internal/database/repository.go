package database

import (
	"context"
	"database/sql"

	"github.com/bsan5566/food-waste/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes the per-table repositories using struct embedding.
type Repository struct {
	*ProviderRepo
	*ReceiverRepo
	*ListingRepo
	*ClaimRepo
	*ReportRepo

	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProviderRepo: &ProviderRepo{db: db},
		ReceiverRepo: &ReceiverRepo{db: db},
		ListingRepo:  &ListingRepo{db: db},
		ClaimRepo:    &ClaimRepo{db: db},
		ReportRepo:   &ReportRepo{db: db},
		db:           db,
	}
}

// Wrapper methods for ProviderRepo; the embedded method sets collide across
// repos, so the entity name is spelled out here.
func (r *Repository) CreateProvider(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	return r.ProviderRepo.Create(ctx, p)
}

func (r *Repository) GetProviderByID(ctx context.Context, id int) (*models.Provider, error) {
	return r.ProviderRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllProviders(ctx context.Context) ([]*models.Provider, error) {
	return r.ProviderRepo.GetAll(ctx)
}

func (r *Repository) UpdateProvider(ctx context.Context, p *models.Provider) error {
	return r.ProviderRepo.Update(ctx, p)
}

func (r *Repository) DeleteProvider(ctx context.Context, id int) error {
	return r.ProviderRepo.Delete(ctx, id)
}

func (r *Repository) CountListingsByProvider(ctx context.Context, providerID int) (int, error) {
	return r.ProviderRepo.CountListings(ctx, providerID)
}

// Wrapper methods for ReceiverRepo
func (r *Repository) CreateReceiver(ctx context.Context, rec *models.Receiver) (*models.Receiver, error) {
	return r.ReceiverRepo.Create(ctx, rec)
}

func (r *Repository) GetReceiverByID(ctx context.Context, id int) (*models.Receiver, error) {
	return r.ReceiverRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllReceivers(ctx context.Context) ([]*models.Receiver, error) {
	return r.ReceiverRepo.GetAll(ctx)
}

func (r *Repository) UpdateReceiver(ctx context.Context, rec *models.Receiver) error {
	return r.ReceiverRepo.Update(ctx, rec)
}

func (r *Repository) DeleteReceiver(ctx context.Context, id int) error {
	return r.ReceiverRepo.Delete(ctx, id)
}

func (r *Repository) CountClaimsByReceiver(ctx context.Context, receiverID int) (int, error) {
	return r.ReceiverRepo.CountClaims(ctx, receiverID)
}

// Wrapper methods for ListingRepo
func (r *Repository) CreateListing(ctx context.Context, l *models.FoodListing) (*models.FoodListing, error) {
	return r.ListingRepo.Create(ctx, l)
}

func (r *Repository) GetListingByID(ctx context.Context, id int) (*models.FoodListing, error) {
	return r.ListingRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllListings(ctx context.Context) ([]*models.FoodListing, error) {
	return r.ListingRepo.GetAll(ctx)
}

func (r *Repository) FilterListings(ctx context.Context, f models.ListingFilter) ([]*models.FoodListing, error) {
	return r.ListingRepo.Filter(ctx, f)
}

func (r *Repository) GetRecentListings(ctx context.Context, limit int) ([]*models.FoodListing, error) {
	return r.ListingRepo.GetRecent(ctx, limit)
}

func (r *Repository) UpdateListing(ctx context.Context, l *models.FoodListing) error {
	return r.ListingRepo.Update(ctx, l)
}

func (r *Repository) DeleteListing(ctx context.Context, id int) error {
	return r.ListingRepo.Delete(ctx, id)
}

func (r *Repository) CountClaimsByListing(ctx context.Context, foodID int) (int, error) {
	return r.ListingRepo.CountClaims(ctx, foodID)
}

// Wrapper methods for ClaimRepo
func (r *Repository) CreateClaim(ctx context.Context, c *models.Claim) (*models.Claim, error) {
	return r.ClaimRepo.Create(ctx, c)
}

func (r *Repository) GetClaimByID(ctx context.Context, id int) (*models.Claim, error) {
	return r.ClaimRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllClaims(ctx context.Context) ([]*models.Claim, error) {
	return r.ClaimRepo.GetAll(ctx)
}

func (r *Repository) UpdateClaim(ctx context.Context, c *models.Claim) error {
	return r.ClaimRepo.Update(ctx, c)
}

func (r *Repository) DeleteClaim(ctx context.Context, id int) error {
	return r.ClaimRepo.Delete(ctx, id)
}
