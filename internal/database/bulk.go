package database

import (
	"context"

	"github.com/bsan5566/food-waste/internal/models"
)

// Dataset is a full snapshot of the four tables, as parsed from the CSV
// sources. IDs come from the source files and are preserved on load.
type Dataset struct {
	Providers []*models.Provider
	Receivers []*models.Receiver
	Listings  []*models.FoodListing
	Claims    []*models.Claim
}

// ReplaceAll atomically replaces the entire store contents with the dataset.
// Existing rows are deleted children-first, new rows inserted parents-first,
// so foreign key checks stay enabled throughout. Re-running a load never
// appends.
func (r *Repository) ReplaceAll(ctx context.Context, ds *Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"claims", "food_listings", "receivers", "providers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, p := range ds.Providers {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO providers (provider_id, name, type, address, city, contact)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Type, p.Address, p.City, p.Contact,
		)
		if err != nil {
			return err
		}
	}

	for _, rec := range ds.Receivers {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO receivers (receiver_id, name, type, city, contact)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, rec.Name, rec.Type, rec.City, rec.Contact,
		)
		if err != nil {
			return err
		}
	}

	for _, l := range ds.Listings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO food_listings
			 (food_id, food_name, quantity, expiry_date, provider_id, provider_type, location, food_type, meal_type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID,
			l.ProviderType, l.Location, l.FoodType, l.MealType,
		)
		if err != nil {
			return err
		}
	}

	for _, c := range ds.Claims {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claims (claim_id, food_id, receiver_id, status, timestamp)
			 VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.FoodID, c.ReceiverID, c.Status, c.Timestamp,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
