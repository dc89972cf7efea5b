package database

import (
	"context"
	"database/sql"

	"github.com/bsan5566/food-waste/internal/models"
)

// ProviderRepo handles all provider table operations.
type ProviderRepo struct {
	db *sql.DB
}

// Create inserts a new provider and returns the stored row.
func (r *ProviderRepo) Create(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO providers (name, type, address, city, contact)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Type, p.Address, p.City, p.Contact,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single provider. Returns sql.ErrNoRows if missing.
func (r *ProviderRepo) GetByID(ctx context.Context, id int) (*models.Provider, error) {
	p := &models.Provider{}
	err := r.db.QueryRowContext(ctx,
		`SELECT provider_id, name, type, address, city, contact
		 FROM providers WHERE provider_id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Type, &p.Address, &p.City, &p.Contact)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll retrieves every provider ordered by id.
func (r *ProviderRepo) GetAll(ctx context.Context) ([]*models.Provider, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provider_id, name, type, address, city, contact
		 FROM providers ORDER BY provider_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []*models.Provider
	for rows.Next() {
		p := &models.Provider{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Address, &p.City, &p.Contact); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

// Update replaces all mutable fields of an existing provider.
// Returns sql.ErrNoRows if the id does not exist.
func (r *ProviderRepo) Update(ctx context.Context, p *models.Provider) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE providers SET name = ?, type = ?, address = ?, city = ?, contact = ?
		 WHERE provider_id = ?`,
		p.Name, p.Type, p.Address, p.City, p.Contact, p.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a provider by id. Returns sql.ErrNoRows if the id does not
// exist. Fails with a constraint error if the provider still owns listings.
func (r *ProviderRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM providers WHERE provider_id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// CountListings returns the number of food listings owned by a provider.
func (r *ProviderRepo) CountListings(ctx context.Context, providerID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM food_listings WHERE provider_id = ?", providerID,
	).Scan(&count)
	return count, err
}
