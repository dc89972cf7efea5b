package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bsan5566/food-waste/internal/models"
)

// ListingRepo handles all food_listings table operations.
type ListingRepo struct {
	db *sql.DB
}

const listingColumns = `food_id, food_name, quantity, expiry_date, provider_id,
	provider_type, location, food_type, meal_type`

func scanListing(row interface{ Scan(...any) error }) (*models.FoodListing, error) {
	l := &models.FoodListing{}
	err := row.Scan(
		&l.ID, &l.FoodName, &l.Quantity, &l.ExpiryDate, &l.ProviderID,
		&l.ProviderType, &l.Location, &l.FoodType, &l.MealType,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new food listing and returns the stored row.
func (r *ListingRepo) Create(ctx context.Context, l *models.FoodListing) (*models.FoodListing, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO food_listings
		 (food_name, quantity, expiry_date, provider_id, provider_type, location, food_type, meal_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID,
		l.ProviderType, l.Location, l.FoodType, l.MealType,
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

// GetByID retrieves a single listing. Returns sql.ErrNoRows if missing.
func (r *ListingRepo) GetByID(ctx context.Context, id int) (*models.FoodListing, error) {
	return scanListing(r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM food_listings WHERE food_id = ?`, id))
}

// GetAll retrieves every listing ordered by id.
func (r *ListingRepo) GetAll(ctx context.Context) ([]*models.FoodListing, error) {
	return r.queryListings(ctx,
		`SELECT `+listingColumns+` FROM food_listings ORDER BY food_id`)
}

// Filter retrieves listings matching every non-empty filter field, ordered
// by id. An empty filter behaves like GetAll.
func (r *ListingRepo) Filter(ctx context.Context, f models.ListingFilter) ([]*models.FoodListing, error) {
	query := `SELECT ` + listingColumns + ` FROM food_listings`
	var conds []string
	var args []any
	if f.City != "" {
		conds = append(conds, "location = ?")
		args = append(args, f.City)
	}
	if f.ProviderType != "" {
		conds = append(conds, "provider_type = ?")
		args = append(args, f.ProviderType)
	}
	if f.FoodType != "" {
		conds = append(conds, "food_type = ?")
		args = append(args, f.FoodType)
	}
	if f.MealType != "" {
		conds = append(conds, "meal_type = ?")
		args = append(args, f.MealType)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY food_id"
	return r.queryListings(ctx, query, args...)
}

// GetRecent retrieves the most recently added listings, newest first.
func (r *ListingRepo) GetRecent(ctx context.Context, limit int) ([]*models.FoodListing, error) {
	return r.queryListings(ctx,
		`SELECT `+listingColumns+` FROM food_listings ORDER BY food_id DESC LIMIT ?`, limit)
}

func (r *ListingRepo) queryListings(ctx context.Context, query string, args ...any) ([]*models.FoodListing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.FoodListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Update replaces all mutable fields of an existing listing.
func (r *ListingRepo) Update(ctx context.Context, l *models.FoodListing) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE food_listings
		 SET food_name = ?, quantity = ?, expiry_date = ?, provider_id = ?,
		     provider_type = ?, location = ?, food_type = ?, meal_type = ?
		 WHERE food_id = ?`,
		l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID,
		l.ProviderType, l.Location, l.FoodType, l.MealType, l.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a listing by id. Fails with a constraint error if the
// listing still has claims.
func (r *ListingRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM food_listings WHERE food_id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// CountClaims returns the number of claims against a listing.
func (r *ListingRepo) CountClaims(ctx context.Context, foodID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM claims WHERE food_id = ?", foodID,
	).Scan(&count)
	return count, err
}
