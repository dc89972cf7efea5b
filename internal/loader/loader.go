// Package loader parses the four CSV source tables into a database.Dataset.
// Column headers are matched case-insensitively with spaces collapsed to
// underscores, so "Provider ID" and "provider_id" are the same column.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Sources holds the file paths of the four CSV tables.
type Sources struct {
	Providers string
	Receivers string
	Listings  string
	Claims    string
}

// Load reads all four sources and returns the parsed dataset.
func Load(src Sources) (*database.Dataset, error) {
	providers, err := LoadProviders(src.Providers)
	if err != nil {
		return nil, err
	}
	receivers, err := LoadReceivers(src.Receivers)
	if err != nil {
		return nil, err
	}
	listings, err := LoadListings(src.Listings)
	if err != nil {
		return nil, err
	}
	claims, err := LoadClaims(src.Claims)
	if err != nil {
		return nil, err
	}
	return &database.Dataset{
		Providers: providers,
		Receivers: receivers,
		Listings:  listings,
		Claims:    claims,
	}, nil
}

// table is one parsed CSV file: a header index plus the data rows.
type table struct {
	path  string
	index map[string]int
	rows  [][]string
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrMalformed, path)
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[normalizeColumn(col)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrSchemaMismatch, path, col)
		}
	}

	return &table{path: path, index: index, rows: records[1:]}, nil
}

func (t *table) field(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) intField(row []string, col string, line int) (int, error) {
	raw := t.field(row, col)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s line %d: column %q: %q is not an integer",
			ErrBadRow, t.path, line, col, raw)
	}
	return n, nil
}

// LoadProviders parses the providers CSV.
func LoadProviders(path string) ([]*models.Provider, error) {
	t, err := readTable(path, "provider_id", "name", "type", "city")
	if err != nil {
		return nil, err
	}

	providers := make([]*models.Provider, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2 // 1-based, after the header
		id, err := t.intField(row, "provider_id", line)
		if err != nil {
			return nil, err
		}
		providers = append(providers, &models.Provider{
			ID:      id,
			Name:    t.field(row, "name"),
			Type:    t.field(row, "type"),
			Address: t.field(row, "address"),
			City:    t.field(row, "city"),
			Contact: t.field(row, "contact"),
		})
	}
	return providers, nil
}

// LoadReceivers parses the receivers CSV.
func LoadReceivers(path string) ([]*models.Receiver, error) {
	t, err := readTable(path, "receiver_id", "name", "city")
	if err != nil {
		return nil, err
	}

	receivers := make([]*models.Receiver, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		id, err := t.intField(row, "receiver_id", line)
		if err != nil {
			return nil, err
		}
		receivers = append(receivers, &models.Receiver{
			ID:      id,
			Name:    t.field(row, "name"),
			Type:    t.field(row, "type"),
			City:    t.field(row, "city"),
			Contact: t.field(row, "contact"),
		})
	}
	return receivers, nil
}

// LoadListings parses the food listings CSV.
func LoadListings(path string) ([]*models.FoodListing, error) {
	t, err := readTable(path, "food_id", "food_name", "quantity", "expiry_date", "provider_id", "location")
	if err != nil {
		return nil, err
	}

	listings := make([]*models.FoodListing, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		id, err := t.intField(row, "food_id", line)
		if err != nil {
			return nil, err
		}
		quantity, err := t.intField(row, "quantity", line)
		if err != nil {
			return nil, err
		}
		if quantity < 0 {
			return nil, fmt.Errorf("%w: %s line %d: negative quantity %d",
				ErrBadRow, t.path, line, quantity)
		}
		providerID, err := t.intField(row, "provider_id", line)
		if err != nil {
			return nil, err
		}
		expiry := t.field(row, "expiry_date")
		if _, err := time.Parse(models.DateLayout, expiry); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad expiry date %q",
				ErrBadRow, t.path, line, expiry)
		}
		listings = append(listings, &models.FoodListing{
			ID:           id,
			FoodName:     t.field(row, "food_name"),
			Quantity:     quantity,
			ExpiryDate:   expiry,
			ProviderID:   providerID,
			ProviderType: t.field(row, "provider_type"),
			Location:     t.field(row, "location"),
			FoodType:     t.field(row, "food_type"),
			MealType:     t.field(row, "meal_type"),
		})
	}
	return listings, nil
}

// LoadClaims parses the claims CSV. Status values are kept as-is; the
// reports normalize case at query time.
func LoadClaims(path string) ([]*models.Claim, error) {
	t, err := readTable(path, "claim_id", "food_id", "receiver_id", "status")
	if err != nil {
		return nil, err
	}

	claims := make([]*models.Claim, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		id, err := t.intField(row, "claim_id", line)
		if err != nil {
			return nil, err
		}
		foodID, err := t.intField(row, "food_id", line)
		if err != nil {
			return nil, err
		}
		receiverID, err := t.intField(row, "receiver_id", line)
		if err != nil {
			return nil, err
		}
		status := t.field(row, "status")
		if !models.ValidClaimStatus(status) {
			return nil, fmt.Errorf("%w: %s line %d: unknown status %q",
				ErrBadRow, t.path, line, status)
		}
		timestamp := t.field(row, "timestamp")
		if timestamp != "" {
			if _, err := time.Parse(models.TimestampLayout, timestamp); err != nil {
				return nil, fmt.Errorf("%w: %s line %d: bad timestamp %q",
					ErrBadRow, t.path, line, timestamp)
			}
		}
		claims = append(claims, &models.Claim{
			ID:         id,
			FoodID:     foodID,
			ReceiverID: receiverID,
			Status:     status,
			Timestamp:  timestamp,
		})
	}
	return claims, nil
}
