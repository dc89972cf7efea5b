package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bsan5566/food-waste/internal/models"
)

// ReportRepo runs the fixed catalog of read-only aggregate queries.
// Ranked reports order by the aggregate descending, then the grouping key
// ascending, so rows with equal aggregates always come back in the same
// order.
type ReportRepo struct {
	db *sql.DB
}

// ProvidersPerCity counts providers grouped by city.
func (r *ReportRepo) ProvidersPerCity(ctx context.Context) ([]*models.CityCount, error) {
	return r.cityCounts(ctx, `
		SELECT city, COUNT(*) AS n
		FROM providers
		GROUP BY city
		ORDER BY n DESC, city ASC`)
}

// ReceiversPerCity counts receivers grouped by city.
func (r *ReportRepo) ReceiversPerCity(ctx context.Context) ([]*models.CityCount, error) {
	return r.cityCounts(ctx, `
		SELECT city, COUNT(*) AS n
		FROM receivers
		GROUP BY city
		ORDER BY n DESC, city ASC`)
}

// ListingsPerCity counts food listings grouped by their location.
func (r *ReportRepo) ListingsPerCity(ctx context.Context) ([]*models.CityCount, error) {
	return r.cityCounts(ctx, `
		SELECT location, COUNT(*) AS n
		FROM food_listings
		GROUP BY location
		ORDER BY n DESC, location ASC`)
}

func (r *ReportRepo) cityCounts(ctx context.Context, query string) ([]*models.CityCount, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CityCount
	for rows.Next() {
		row := &models.CityCount{}
		if err := rows.Scan(&row.City, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ProviderTypeContribution sums listing quantity per provider type.
func (r *ReportRepo) ProviderTypeContribution(ctx context.Context) ([]*models.TypeQuantity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT provider_type, SUM(quantity) AS total
		FROM food_listings
		GROUP BY provider_type
		ORDER BY total DESC, provider_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.TypeQuantity
	for rows.Next() {
		row := &models.TypeQuantity{}
		if err := rows.Scan(&row.ProviderType, &row.TotalQuantity); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ProviderContactsByCity lists provider contact details for one city.
func (r *ReportRepo) ProviderContactsByCity(ctx context.Context, city string) ([]*models.ProviderContact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, type, address, contact
		FROM providers
		WHERE city = ?
		ORDER BY name ASC`, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ProviderContact
	for rows.Next() {
		row := &models.ProviderContact{}
		if err := rows.Scan(&row.Name, &row.Type, &row.Address, &row.Contact); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TopClaimingReceivers counts claims per receiver name.
func (r *ReportRepo) TopClaimingReceivers(ctx context.Context) ([]*models.NameCount, error) {
	return r.nameCounts(ctx, `
		SELECT r.name, COUNT(c.claim_id) AS n
		FROM claims c
		JOIN receivers r ON c.receiver_id = r.receiver_id
		GROUP BY r.name
		ORDER BY n DESC, r.name ASC`)
}

// CompletedClaimsByProvider counts completed claims per provider name.
// Status is matched case-insensitively.
func (r *ReportRepo) CompletedClaimsByProvider(ctx context.Context) ([]*models.NameCount, error) {
	return r.nameCounts(ctx, `
		SELECT p.name, COUNT(c.claim_id) AS n
		FROM claims c
		JOIN food_listings fl ON c.food_id = fl.food_id
		JOIN providers p ON fl.provider_id = p.provider_id
		WHERE LOWER(c.status) = 'completed'
		GROUP BY p.name
		ORDER BY n DESC, p.name ASC`)
}

func (r *ReportRepo) nameCounts(ctx context.Context, query string) ([]*models.NameCount, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.NameCount
	for rows.Next() {
		row := &models.NameCount{}
		if err := rows.Scan(&row.Name, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TotalAvailableQuantity sums the quantity across all listings.
func (r *ReportRepo) TotalAvailableQuantity(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(quantity), 0) FROM food_listings").Scan(&total)
	return total, err
}

// FoodTypeCounts counts listings per food type.
func (r *ReportRepo) FoodTypeCounts(ctx context.Context) ([]*models.FoodTypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT food_type, COUNT(*) AS n
		FROM food_listings
		GROUP BY food_type
		ORDER BY n DESC, food_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.FoodTypeCount
	for rows.Next() {
		row := &models.FoodTypeCount{}
		if err := rows.Scan(&row.FoodType, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ClaimsPerFoodItem counts claims per food name. The LEFT JOIN keeps food
// items with zero claims in the result with a count of 0.
func (r *ReportRepo) ClaimsPerFoodItem(ctx context.Context) ([]*models.FoodClaimCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fl.food_name, COUNT(c.claim_id) AS n
		FROM food_listings fl
		LEFT JOIN claims c ON fl.food_id = c.food_id
		GROUP BY fl.food_name
		ORDER BY n DESC, fl.food_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.FoodClaimCount
	for rows.Next() {
		row := &models.FoodClaimCount{}
		if err := rows.Scan(&row.FoodName, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ClaimStatusDistribution counts claims per normalized (lowercased) status.
func (r *ReportRepo) ClaimStatusDistribution(ctx context.Context) ([]*models.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT LOWER(status) AS s, COUNT(*) AS n
		FROM claims
		GROUP BY LOWER(status)
		ORDER BY n DESC, s ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StatusCount
	for rows.Next() {
		row := &models.StatusCount{}
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ClaimCompletionPercentage reports each normalized status's share of all
// claims. Empty store yields an empty slice.
func (r *ReportRepo) ClaimCompletionPercentage(ctx context.Context) ([]*models.StatusPercent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT LOWER(status) AS s,
		       COUNT(*) * 100.0 / (SELECT COUNT(*) FROM claims) AS pct
		FROM claims
		GROUP BY LOWER(status)
		ORDER BY pct DESC, s ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StatusPercent
	for rows.Next() {
		row := &models.StatusPercent{}
		if err := rows.Scan(&row.Status, &row.Percent); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AvgQuantityPerReceiver averages the claimed listing quantity per receiver.
// The join produces one row per claim, so a listing claimed twice counts its
// quantity twice.
func (r *ReportRepo) AvgQuantityPerReceiver(ctx context.Context) ([]*models.NameAverage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.name, AVG(fl.quantity) AS avg_qty
		FROM claims c
		JOIN receivers r ON c.receiver_id = r.receiver_id
		JOIN food_listings fl ON c.food_id = fl.food_id
		GROUP BY r.name
		ORDER BY avg_qty DESC, r.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.NameAverage
	for rows.Next() {
		row := &models.NameAverage{}
		if err := rows.Scan(&row.Name, &row.AvgQuantity); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ClaimsPerMealType counts claims per meal type of the claimed listing.
func (r *ReportRepo) ClaimsPerMealType(ctx context.Context) ([]*models.MealTypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fl.meal_type, COUNT(c.claim_id) AS n
		FROM claims c
		JOIN food_listings fl ON c.food_id = fl.food_id
		GROUP BY fl.meal_type
		ORDER BY n DESC, fl.meal_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MealTypeCount
	for rows.Next() {
		row := &models.MealTypeCount{}
		if err := rows.Scan(&row.MealType, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TotalDonatedByProvider sums listing quantity per provider name.
func (r *ReportRepo) TotalDonatedByProvider(ctx context.Context) ([]*models.NameQuantity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.name, SUM(fl.quantity) AS total
		FROM food_listings fl
		JOIN providers p ON fl.provider_id = p.provider_id
		GROUP BY p.name
		ORDER BY total DESC, p.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.NameQuantity
	for rows.Next() {
		row := &models.NameQuantity{}
		if err := rows.Scan(&row.Name, &row.TotalQuantity); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListingsNearingExpiry lists food expiring within the next `days` days
// (today inclusive), soonest first.
func (r *ReportRepo) ListingsNearingExpiry(ctx context.Context, days int) ([]*models.FoodListing, error) {
	offset := fmt.Sprintf("+%d day", days)
	return r.listingRows(ctx, `
		SELECT `+listingColumns+`
		FROM food_listings
		WHERE date(expiry_date) <= date('now', ?)
		ORDER BY expiry_date ASC, food_id ASC`, offset)
}

// ExpiredListings lists food whose expiry date has already passed.
func (r *ReportRepo) ExpiredListings(ctx context.Context) ([]*models.FoodListing, error) {
	return r.listingRows(ctx, `
		SELECT `+listingColumns+`
		FROM food_listings
		WHERE date(expiry_date) < date('now')
		ORDER BY expiry_date ASC, food_id ASC`)
}

// LowStockListings lists food with quantity at or below the threshold.
func (r *ReportRepo) LowStockListings(ctx context.Context, threshold int) ([]*models.FoodListing, error) {
	return r.listingRows(ctx, `
		SELECT `+listingColumns+`
		FROM food_listings
		WHERE quantity <= ?
		ORDER BY quantity ASC, food_id ASC`, threshold)
}

func (r *ReportRepo) listingRows(ctx context.Context, query string, args ...any) ([]*models.FoodListing, error) {
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

// PendingClaims lists claims still pending, oldest first, joined with the
// receiver and food names.
func (r *ReportRepo) PendingClaims(ctx context.Context) ([]*models.PendingClaim, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.claim_id, r.name, fl.food_name, c.timestamp
		FROM claims c
		JOIN receivers r ON c.receiver_id = r.receiver_id
		JOIN food_listings fl ON c.food_id = fl.food_id
		WHERE LOWER(c.status) = 'pending'
		ORDER BY c.timestamp ASC, c.claim_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PendingClaim
	for rows.Next() {
		row := &models.PendingClaim{}
		if err := rows.Scan(&row.ClaimID, &row.Receiver, &row.FoodName, &row.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Overview returns the headline row counts for the dashboard.
func (r *ReportRepo) Overview(ctx context.Context) (*models.Overview, error) {
	o := &models.Overview{}
	for _, q := range []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM providers", &o.Providers},
		{"SELECT COUNT(*) FROM receivers", &o.Receivers},
		{"SELECT COUNT(*) FROM food_listings", &o.Listings},
		{"SELECT COUNT(*) FROM claims", &o.Claims},
	} {
		if err := r.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return o, nil
}
