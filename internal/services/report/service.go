// Package report exposes the fixed catalog of aggregate queries.
// Reports are pure reads: an empty store produces empty results, never an
// error.
package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bsan5566/food-waste/internal/database"
	"github.com/bsan5566/food-waste/internal/models"
)

// Options carries the parameters of the two parameterized reports.
type Options struct {
	City      string // provider-contacts
	Days      int    // nearing-expiry day window
	Threshold int    // low-stock quantity bound
}

// Result is a report rendered as a uniform table, for the CLI and the TUI.
type Result struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Info describes one catalog entry for listings and pickers.
type Info struct {
	Name        string
	Description string
}

// Service runs catalog reports against the store.
type Service struct {
	store database.ReportStore
}

// NewService creates a new report service
func NewService(store database.ReportStore) *Service {
	return &Service{store: store}
}

// Catalog lists every report name with a short description, in menu order.
func Catalog() []Info {
	return []Info{
		{"overview", "Total providers, receivers, listings and claims"},
		{"providers-per-city", "Number of providers in each city"},
		{"receivers-per-city", "Number of receivers in each city"},
		{"provider-type-contribution", "Total quantity donated per provider type"},
		{"provider-contacts", "Provider contact details for a city (requires --city)"},
		{"top-receivers", "Receivers ranked by number of claims"},
		{"total-quantity", "Total quantity across all listings"},
		{"listings-per-city", "Number of listings in each city"},
		{"food-types", "Most common food types"},
		{"claims-per-food", "Claims per food item, including unclaimed foods"},
		{"completed-by-provider", "Providers ranked by completed claims"},
		{"status-distribution", "Claims per status"},
		{"completion-percentage", "Share of claims per status"},
		{"avg-quantity-per-receiver", "Average claimed listing quantity per receiver"},
		{"meal-types", "Most claimed meal types"},
		{"donated-by-provider", "Total quantity donated per provider"},
		{"nearing-expiry", "Listings expiring within N days (--days)"},
		{"expired", "Listings past their expiry date"},
		{"low-stock", "Listings at or below a quantity threshold (--max-quantity)"},
		{"pending-claims", "Claims still pending, oldest first"},
	}
}

// Run executes a report by catalog name and renders it as a table.
func (s *Service) Run(ctx context.Context, name string, opts Options) (*Result, error) {
	switch name {
	case "overview":
		o, err := s.store.Overview(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{
			Name:    name,
			Columns: []string{"providers", "receivers", "listings", "claims"},
			Rows: [][]string{{
				strconv.Itoa(o.Providers), strconv.Itoa(o.Receivers),
				strconv.Itoa(o.Listings), strconv.Itoa(o.Claims),
			}},
		}, nil

	case "providers-per-city":
		rows, err := s.store.ProvidersPerCity(ctx)
		return cityCountResult(name, "provider_count", rows, err)

	case "receivers-per-city":
		rows, err := s.store.ReceiversPerCity(ctx)
		return cityCountResult(name, "receiver_count", rows, err)

	case "listings-per-city":
		rows, err := s.store.ListingsPerCity(ctx)
		return cityCountResult(name, "listing_count", rows, err)

	case "provider-type-contribution":
		rows, err := s.store.ProviderTypeContribution(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"provider_type", "total_quantity"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.ProviderType, strconv.Itoa(r.TotalQuantity)})
		}
		return res, nil

	case "provider-contacts":
		if strings.TrimSpace(opts.City) == "" {
			return nil, ErrEmptyCity
		}
		rows, err := s.store.ProviderContactsByCity(ctx, opts.City)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"name", "type", "address", "contact"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.Name, r.Type, r.Address, r.Contact})
		}
		return res, nil

	case "top-receivers":
		rows, err := s.store.TopClaimingReceivers(ctx)
		return nameCountResult(name, "receiver", "total_claims", rows, err)

	case "completed-by-provider":
		rows, err := s.store.CompletedClaimsByProvider(ctx)
		return nameCountResult(name, "provider", "completed_claims", rows, err)

	case "total-quantity":
		total, err := s.store.TotalAvailableQuantity(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{
			Name:    name,
			Columns: []string{"total_quantity"},
			Rows:    [][]string{{strconv.Itoa(total)}},
		}, nil

	case "food-types":
		rows, err := s.store.FoodTypeCounts(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"food_type", "listings"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.FoodType, strconv.Itoa(r.Count)})
		}
		return res, nil

	case "claims-per-food":
		rows, err := s.store.ClaimsPerFoodItem(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"food_name", "claims"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.FoodName, strconv.Itoa(r.Count)})
		}
		return res, nil

	case "status-distribution":
		rows, err := s.store.ClaimStatusDistribution(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"status", "claims"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.Status, strconv.Itoa(r.Count)})
		}
		return res, nil

	case "completion-percentage":
		rows, err := s.store.ClaimCompletionPercentage(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"status", "percentage"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.Status, fmt.Sprintf("%.2f", r.Percent)})
		}
		return res, nil

	case "avg-quantity-per-receiver":
		rows, err := s.store.AvgQuantityPerReceiver(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"receiver", "avg_quantity"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.Name, fmt.Sprintf("%.2f", r.AvgQuantity)})
		}
		return res, nil

	case "meal-types":
		rows, err := s.store.ClaimsPerMealType(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"meal_type", "claims"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.MealType, strconv.Itoa(r.Count)})
		}
		return res, nil

	case "donated-by-provider":
		rows, err := s.store.TotalDonatedByProvider(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"provider", "total_donated"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{r.Name, strconv.Itoa(r.TotalQuantity)})
		}
		return res, nil

	case "nearing-expiry":
		if opts.Days < 0 {
			return nil, ErrNegativeDays
		}
		rows, err := s.store.ListingsNearingExpiry(ctx, opts.Days)
		return listingResult(name, rows, err)

	case "expired":
		rows, err := s.store.ExpiredListings(ctx)
		return listingResult(name, rows, err)

	case "low-stock":
		if opts.Threshold < 0 {
			return nil, ErrNegativeThreshold
		}
		rows, err := s.store.LowStockListings(ctx, opts.Threshold)
		return listingResult(name, rows, err)

	case "pending-claims":
		rows, err := s.store.PendingClaims(ctx)
		if err != nil {
			return nil, err
		}
		res := &Result{Name: name, Columns: []string{"claim_id", "receiver", "food_name", "timestamp"}}
		for _, r := range rows {
			res.Rows = append(res.Rows, []string{
				strconv.Itoa(r.ClaimID), r.Receiver, r.FoodName, r.Timestamp,
			})
		}
		return res, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
}

func cityCountResult(name, countCol string, rows []*models.CityCount, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	res := &Result{Name: name, Columns: []string{"city", countCol}}
	for _, r := range rows {
		res.Rows = append(res.Rows, []string{r.City, strconv.Itoa(r.Count)})
	}
	return res, nil
}

func nameCountResult(name, nameCol, countCol string, rows []*models.NameCount, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	res := &Result{Name: name, Columns: []string{nameCol, countCol}}
	for _, r := range rows {
		res.Rows = append(res.Rows, []string{r.Name, strconv.Itoa(r.Count)})
	}
	return res, nil
}

func listingResult(name string, rows []*models.FoodListing, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	res := &Result{Name: name, Columns: []string{
		"food_id", "food_name", "quantity", "expiry_date", "location", "food_type", "meal_type",
	}}
	for _, l := range rows {
		res.Rows = append(res.Rows, []string{
			strconv.Itoa(l.ID), l.FoodName, strconv.Itoa(l.Quantity),
			l.ExpiryDate, l.Location, l.FoodType, l.MealType,
		})
	}
	return res, nil
}
