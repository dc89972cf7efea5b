package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Service defines all claim-related business operations
type Service interface {
	GetClaimByID(ctx context.Context, id int) (*models.Claim, error)
	GetAllClaims(ctx context.Context) ([]*models.Claim, error)
	CreateClaim(ctx context.Context, req CreateRequest) (*models.Claim, error)
	UpdateClaim(ctx context.Context, req UpdateRequest) error
	DeleteClaim(ctx context.Context, id int) error
}

// CreateRequest encapsulates all data needed to create a claim.
// Status is matched case-insensitively and stored lowercase.
// An empty Timestamp defaults to the current time.
type CreateRequest struct {
	FoodID     int
	ReceiverID int
	Status     string
	Timestamp  string
}

// UpdateRequest encapsulates a partial claim update.
// Nil fields are left unchanged.
type UpdateRequest struct {
	ID         int
	FoodID     *int
	ReceiverID *int
	Status     *string
	Timestamp  *string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new claim service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) GetClaimByID(ctx context.Context, id int) (*models.Claim, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	c, err := s.repo.GetClaimByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return c, nil
}

func (s *service) GetAllClaims(ctx context.Context) ([]*models.Claim, error) {
	return s.repo.GetAllClaims(ctx)
}

func (s *service) CreateClaim(ctx context.Context, req CreateRequest) (*models.Claim, error) {
	if !models.ValidClaimStatus(req.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(models.TimestampLayout)
	} else if _, err := time.Parse(models.TimestampLayout, timestamp); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	if err := s.checkReferences(ctx, req.FoodID, req.ReceiverID); err != nil {
		return nil, err
	}

	c, err := s.repo.CreateClaim(ctx, &models.Claim{
		FoodID:     req.FoodID,
		ReceiverID: req.ReceiverID,
		Status:     models.NormalizeStatus(req.Status),
		Timestamp:  timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	return c, nil
}

func (s *service) UpdateClaim(ctx context.Context, req UpdateRequest) error {
	current, err := s.GetClaimByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.FoodID != nil {
		current.FoodID = *req.FoodID
	}
	if req.ReceiverID != nil {
		current.ReceiverID = *req.ReceiverID
	}
	if req.Status != nil {
		if !models.ValidClaimStatus(*req.Status) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		current.Status = models.NormalizeStatus(*req.Status)
	}
	if req.Timestamp != nil {
		if _, err := time.Parse(models.TimestampLayout, *req.Timestamp); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimestamp, *req.Timestamp)
		}
		current.Timestamp = *req.Timestamp
	}

	if err := s.checkReferences(ctx, current.FoodID, current.ReceiverID); err != nil {
		return err
	}

	if err := s.repo.UpdateClaim(ctx, current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update claim: %w", err)
	}
	return nil
}

func (s *service) DeleteClaim(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.DeleteClaim(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	return nil
}

// checkReferences verifies both foreign keys before a write so the caller
// gets a specific error instead of a raw constraint failure.
func (s *service) checkReferences(ctx context.Context, foodID, receiverID int) error {
	if _, err := s.repo.GetListingByID(ctx, foodID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", ErrListingNotFound, foodID)
		}
		return fmt.Errorf("failed to look up listing: %w", err)
	}
	if _, err := s.repo.GetReceiverByID(ctx, receiverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", ErrReceiverNotFound, receiverID)
		}
		return fmt.Errorf("failed to look up receiver: %w", err)
	}
	return nil
}
