package database

import (
	"context"
	"database/sql"

	"github.com/bsan5566/food-waste/internal/models"
)

// ReceiverRepo handles all receiver table operations.
type ReceiverRepo struct {
	db *sql.DB
}

// Create inserts a new receiver and returns the stored row.
func (r *ReceiverRepo) Create(ctx context.Context, rec *models.Receiver) (*models.Receiver, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO receivers (name, type, city, contact)
		 VALUES (?, ?, ?, ?)`,
		rec.Name, rec.Type, rec.City, rec.Contact,
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

// GetByID retrieves a single receiver. Returns sql.ErrNoRows if missing.
func (r *ReceiverRepo) GetByID(ctx context.Context, id int) (*models.Receiver, error) {
	rec := &models.Receiver{}
	err := r.db.QueryRowContext(ctx,
		`SELECT receiver_id, name, type, city, contact
		 FROM receivers WHERE receiver_id = ?`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Type, &rec.City, &rec.Contact)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetAll retrieves every receiver ordered by id.
func (r *ReceiverRepo) GetAll(ctx context.Context) ([]*models.Receiver, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT receiver_id, name, type, city, contact
		 FROM receivers ORDER BY receiver_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receivers []*models.Receiver
	for rows.Next() {
		rec := &models.Receiver{}
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Type, &rec.City, &rec.Contact); err != nil {
			return nil, err
		}
		receivers = append(receivers, rec)
	}
	return receivers, rows.Err()
}

// Update replaces all mutable fields of an existing receiver.
func (r *ReceiverRepo) Update(ctx context.Context, rec *models.Receiver) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE receivers SET name = ?, type = ?, city = ?, contact = ?
		 WHERE receiver_id = ?`,
		rec.Name, rec.Type, rec.City, rec.Contact, rec.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a receiver by id. Fails with a constraint error if the
// receiver still has claims.
func (r *ReceiverRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM receivers WHERE receiver_id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// CountClaims returns the number of claims initiated by a receiver.
func (r *ReceiverRepo) CountClaims(ctx context.Context, receiverID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM claims WHERE receiver_id = ?", receiverID,
	).Scan(&count)
	return count, err
}
