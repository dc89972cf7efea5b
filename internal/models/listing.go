package models

// FoodListing represents a single food donation record.
// ProviderType is a denormalized copy of the owning provider's Type so that
// provider-type reports don't need a join.
type FoodListing struct {
	ID           int
	FoodName     string
	Quantity     int    // Non-negative number of units/servings
	ExpiryDate   string // YYYY-MM-DD
	ProviderID   int
	ProviderType string
	Location     string // City where the food is available
	FoodType     string // e.g., "Vegetarian", "Non-Vegetarian", "Vegan"
	MealType     string // e.g., "Breakfast", "Lunch", "Dinner", "Snacks"
}

// GetID returns the listing's ID. Used by the CLI quiet-mode output.
func (l *FoodListing) GetID() int { return l.ID }

// ListingFilter narrows a listing browse. Empty fields match everything.
type ListingFilter struct {
	City         string
	ProviderType string
	FoodType     string
	MealType     string
}
