package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Service defines all food-listing business operations
type Service interface {
	GetListingByID(ctx context.Context, id int) (*models.FoodListing, error)
	GetAllListings(ctx context.Context) ([]*models.FoodListing, error)
	FilterListings(ctx context.Context, f models.ListingFilter) ([]*models.FoodListing, error)
	CreateListing(ctx context.Context, req CreateRequest) (*models.FoodListing, error)
	UpdateListing(ctx context.Context, req UpdateRequest) error
	DeleteListing(ctx context.Context, id int) error
}

// CreateRequest encapsulates all data needed to create a food listing.
// ProviderType is optional; when empty it is denormalized from the provider.
type CreateRequest struct {
	FoodName     string
	Quantity     int
	ExpiryDate   string
	ProviderID   int
	ProviderType string
	Location     string
	FoodType     string
	MealType     string
}

// UpdateRequest encapsulates a partial listing update.
// Nil fields are left unchanged.
type UpdateRequest struct {
	ID         int
	FoodName   *string
	Quantity   *int
	ExpiryDate *string
	ProviderID *int
	Location   *string
	FoodType   *string
	MealType   *string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new listing service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) GetListingByID(ctx context.Context, id int) (*models.FoodListing, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	l, err := s.repo.GetListingByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return l, nil
}

func (s *service) GetAllListings(ctx context.Context) ([]*models.FoodListing, error) {
	return s.repo.GetAllListings(ctx)
}

// FilterListings browses listings by city, provider type, food type and
// meal type. Empty fields match everything.
func (s *service) FilterListings(ctx context.Context, f models.ListingFilter) ([]*models.FoodListing, error) {
	f.City = strings.TrimSpace(f.City)
	f.ProviderType = strings.TrimSpace(f.ProviderType)
	f.FoodType = strings.TrimSpace(f.FoodType)
	f.MealType = strings.TrimSpace(f.MealType)
	return s.repo.FilterListings(ctx, f)
}

func (s *service) CreateListing(ctx context.Context, req CreateRequest) (*models.FoodListing, error) {
	if err := validateFields(req.FoodName, req.Location, req.Quantity, req.ExpiryDate); err != nil {
		return nil, err
	}

	// The provider must exist; its type is denormalized onto the listing
	prov, err := s.repo.GetProviderByID(ctx, req.ProviderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrProviderNotFound, req.ProviderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}

	providerType := strings.TrimSpace(req.ProviderType)
	if providerType == "" {
		providerType = prov.Type
	}

	l, err := s.repo.CreateListing(ctx, &models.FoodListing{
		FoodName:     strings.TrimSpace(req.FoodName),
		Quantity:     req.Quantity,
		ExpiryDate:   req.ExpiryDate,
		ProviderID:   req.ProviderID,
		ProviderType: providerType,
		Location:     strings.TrimSpace(req.Location),
		FoodType:     req.FoodType,
		MealType:     req.MealType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return l, nil
}

func (s *service) UpdateListing(ctx context.Context, req UpdateRequest) error {
	current, err := s.GetListingByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.FoodName != nil {
		current.FoodName = *req.FoodName
	}
	if req.Quantity != nil {
		current.Quantity = *req.Quantity
	}
	if req.ExpiryDate != nil {
		current.ExpiryDate = *req.ExpiryDate
	}
	if req.Location != nil {
		current.Location = *req.Location
	}
	if req.FoodType != nil {
		current.FoodType = *req.FoodType
	}
	if req.MealType != nil {
		current.MealType = *req.MealType
	}
	if req.ProviderID != nil {
		prov, err := s.repo.GetProviderByID(ctx, *req.ProviderID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", ErrProviderNotFound, *req.ProviderID)
		}
		if err != nil {
			return fmt.Errorf("failed to look up provider: %w", err)
		}
		current.ProviderID = prov.ID
		current.ProviderType = prov.Type
	}

	if err := validateFields(current.FoodName, current.Location, current.Quantity, current.ExpiryDate); err != nil {
		return err
	}

	if err := s.repo.UpdateListing(ctx, current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// DeleteListing removes a listing. Listings that still have claims are
// rejected.
func (s *service) DeleteListing(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	count, err := s.repo.CountClaimsByListing(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count claims: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w (%d claims)", ErrHasClaims, count)
	}

	if err := s.repo.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

func validateFields(foodName, location string, quantity int, expiryDate string) error {
	if strings.TrimSpace(foodName) == "" {
		return ErrEmptyFoodName
	}
	if strings.TrimSpace(location) == "" {
		return ErrEmptyLocation
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if _, err := time.Parse(models.DateLayout, expiryDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidExpiryDate, expiryDate)
	}
	return nil
}
