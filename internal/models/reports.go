package models

// Report row types. Each report returns an ordered slice of one of these;
// ranked reports sort by the aggregate descending, then the grouping key
// ascending so equal aggregates have a deterministic order.

// CityCount pairs a city with a row count (providers, receivers or listings
// per city).
type CityCount struct {
	City  string
	Count int
}

// TypeQuantity pairs a provider type with the summed listing quantity it
// contributed.
type TypeQuantity struct {
	ProviderType  string
	TotalQuantity int
}

// ProviderContact is one row of the provider-contacts-by-city report.
type ProviderContact struct {
	Name    string
	Type    string
	Address string
	Contact string
}

// NameCount pairs a provider or receiver name with a claim count.
type NameCount struct {
	Name  string
	Count int
}

// NameQuantity pairs a provider or receiver name with a summed quantity.
type NameQuantity struct {
	Name          string
	TotalQuantity int
}

// NameAverage pairs a receiver name with the average quantity across the
// listings they claimed, one row per claim.
type NameAverage struct {
	Name        string
	AvgQuantity float64
}

// FoodTypeCount pairs a food type with the number of listings of that type.
type FoodTypeCount struct {
	FoodType string
	Count    int
}

// FoodClaimCount pairs a food name with its claim count. Foods with zero
// claims are included with Count 0.
type FoodClaimCount struct {
	FoodName string
	Count    int
}

// StatusCount pairs a normalized claim status with its count.
type StatusCount struct {
	Status string
	Count  int
}

// StatusPercent pairs a normalized claim status with its share of all claims.
type StatusPercent struct {
	Status  string
	Percent float64
}

// MealTypeCount pairs a meal type with its claim count.
type MealTypeCount struct {
	MealType string
	Count    int
}

// Overview holds the dashboard headline counts.
type Overview struct {
	Providers int
	Receivers int
	Listings  int
	Claims    int
}

// PendingClaim is one row of the pending-claims alert, joined with the
// receiver and food names for display.
type PendingClaim struct {
	ClaimID   int
	Receiver  string
	FoodName  string
	Timestamp string
}
