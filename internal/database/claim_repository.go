package database

import (
	"context"
	"database/sql"

	"github.com/bsan5566/food-waste/internal/models"
)

// ClaimRepo handles all claims table operations.
type ClaimRepo struct {
	db *sql.DB
}

// Create inserts a new claim and returns the stored row.
func (r *ClaimRepo) Create(ctx context.Context, c *models.Claim) (*models.Claim, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO claims (food_id, receiver_id, status, timestamp)
		 VALUES (?, ?, ?, ?)`,
		c.FoodID, c.ReceiverID, c.Status, c.Timestamp,
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

// GetByID retrieves a single claim. Returns sql.ErrNoRows if missing.
func (r *ClaimRepo) GetByID(ctx context.Context, id int) (*models.Claim, error) {
	c := &models.Claim{}
	err := r.db.QueryRowContext(ctx,
		`SELECT claim_id, food_id, receiver_id, status, timestamp
		 FROM claims WHERE claim_id = ?`,
		id,
	).Scan(&c.ID, &c.FoodID, &c.ReceiverID, &c.Status, &c.Timestamp)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetAll retrieves every claim ordered by id.
func (r *ClaimRepo) GetAll(ctx context.Context) ([]*models.Claim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT claim_id, food_id, receiver_id, status, timestamp
		 FROM claims ORDER BY claim_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []*models.Claim
	for rows.Next() {
		c := &models.Claim{}
		if err := rows.Scan(&c.ID, &c.FoodID, &c.ReceiverID, &c.Status, &c.Timestamp); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// Update replaces all mutable fields of an existing claim.
func (r *ClaimRepo) Update(ctx context.Context, c *models.Claim) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE claims SET food_id = ?, receiver_id = ?, status = ?, timestamp = ?
		 WHERE claim_id = ?`,
		c.FoodID, c.ReceiverID, c.Status, c.Timestamp, c.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a claim by id.
func (r *ClaimRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM claims WHERE claim_id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
