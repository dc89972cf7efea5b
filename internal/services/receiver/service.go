package receiver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Service defines all receiver-related business operations
type Service interface {
	GetReceiverByID(ctx context.Context, id int) (*models.Receiver, error)
	GetAllReceivers(ctx context.Context) ([]*models.Receiver, error)
	CreateReceiver(ctx context.Context, req CreateRequest) (*models.Receiver, error)
	UpdateReceiver(ctx context.Context, req UpdateRequest) error
	DeleteReceiver(ctx context.Context, id int) error
}

// CreateRequest encapsulates all data needed to create a receiver
type CreateRequest struct {
	Name    string
	Type    string
	City    string
	Contact string
}

// UpdateRequest encapsulates a partial receiver update.
// Nil fields are left unchanged.
type UpdateRequest struct {
	ID      int
	Name    *string
	Type    *string
	City    *string
	Contact *string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new receiver service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) GetReceiverByID(ctx context.Context, id int) (*models.Receiver, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	rec, err := s.repo.GetReceiverByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}
	return rec, nil
}

func (s *service) GetAllReceivers(ctx context.Context) ([]*models.Receiver, error) {
	return s.repo.GetAllReceivers(ctx)
}

func (s *service) CreateReceiver(ctx context.Context, req CreateRequest) (*models.Receiver, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(req.City) == "" {
		return nil, ErrEmptyCity
	}

	rec, err := s.repo.CreateReceiver(ctx, &models.Receiver{
		Name:    strings.TrimSpace(req.Name),
		Type:    req.Type,
		City:    strings.TrimSpace(req.City),
		Contact: req.Contact,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create receiver: %w", err)
	}
	return rec, nil
}

func (s *service) UpdateReceiver(ctx context.Context, req UpdateRequest) error {
	current, err := s.GetReceiverByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Type != nil {
		current.Type = *req.Type
	}
	if req.City != nil {
		current.City = *req.City
	}
	if req.Contact != nil {
		current.Contact = *req.Contact
	}

	if strings.TrimSpace(current.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(current.City) == "" {
		return ErrEmptyCity
	}

	if err := s.repo.UpdateReceiver(ctx, current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update receiver: %w", err)
	}
	return nil
}

// DeleteReceiver removes a receiver. Receivers with existing claims are
// rejected.
func (s *service) DeleteReceiver(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	count, err := s.repo.CountClaimsByReceiver(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count claims: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w (%d claims)", ErrHasClaims, count)
	}

	if err := s.repo.DeleteReceiver(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete receiver: %w", err)
	}
	return nil
}
