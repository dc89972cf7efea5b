package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Service defines all provider-related business operations
type Service interface {
	GetProviderByID(ctx context.Context, id int) (*models.Provider, error)
	GetAllProviders(ctx context.Context) ([]*models.Provider, error)
	CreateProvider(ctx context.Context, req CreateRequest) (*models.Provider, error)
	UpdateProvider(ctx context.Context, req UpdateRequest) error
	DeleteProvider(ctx context.Context, id int) error
}

// CreateRequest encapsulates all data needed to create a provider
type CreateRequest struct {
	Name    string
	Type    string
	Address string
	City    string
	Contact string
}

// UpdateRequest encapsulates a partial provider update.
// Nil fields are left unchanged.
type UpdateRequest struct {
	ID      int
	Name    *string
	Type    *string
	Address *string
	City    *string
	Contact *string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new provider service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) GetProviderByID(ctx context.Context, id int) (*models.Provider, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	p, err := s.repo.GetProviderByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return p, nil
}

func (s *service) GetAllProviders(ctx context.Context) ([]*models.Provider, error) {
	return s.repo.GetAllProviders(ctx)
}

func (s *service) CreateProvider(ctx context.Context, req CreateRequest) (*models.Provider, error) {
	if err := validateFields(req.Name, req.Type, req.City); err != nil {
		return nil, err
	}

	p, err := s.repo.CreateProvider(ctx, &models.Provider{
		Name:    strings.TrimSpace(req.Name),
		Type:    strings.TrimSpace(req.Type),
		Address: req.Address,
		City:    strings.TrimSpace(req.City),
		Contact: req.Contact,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return p, nil
}

func (s *service) UpdateProvider(ctx context.Context, req UpdateRequest) error {
	current, err := s.GetProviderByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Type != nil {
		current.Type = *req.Type
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.City != nil {
		current.City = *req.City
	}
	if req.Contact != nil {
		current.Contact = *req.Contact
	}

	if err := validateFields(current.Name, current.Type, current.City); err != nil {
		return err
	}

	if err := s.repo.UpdateProvider(ctx, current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update provider: %w", err)
	}
	return nil
}

// DeleteProvider removes a provider. Providers that still own food listings
// are rejected; the caller has to delete the listings first.
func (s *service) DeleteProvider(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	count, err := s.repo.CountListingsByProvider(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w (%d listings)", ErrHasListings, count)
	}

	if err := s.repo.DeleteProvider(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	return nil
}

func validateFields(name, ptype, city string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(ptype) == "" {
		return ErrEmptyType
	}
	if strings.TrimSpace(city) == "" {
		return ErrEmptyCity
	}
	return nil
}
