package huhforms

import "github.com/charmbracelet/huh"

// FoodTypeOptions returns the food type choices offered by the listing form.
// A free-form value can still arrive via the CLI or CSV load.
func FoodTypeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Vegetarian", "Vegetarian"),
		huh.NewOption("Non-Vegetarian", "Non-Vegetarian"),
		huh.NewOption("Vegan", "Vegan"),
	}
}

// MealTypeOptions returns the meal type choices offered by the listing form.
func MealTypeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Breakfast", "Breakfast"),
		huh.NewOption("Lunch", "Lunch"),
		huh.NewOption("Dinner", "Dinner"),
		huh.NewOption("Snacks", "Snacks"),
	}
}

// CreateListingForm creates a huh form for adding a food listing.
// Quantity, expiry and provider ID are captured as strings and parsed
// by the caller so validation errors surface in the status line.
func CreateListingForm(
	foodName *string,
	quantity *string,
	expiry *string,
	providerID *string,
	location *string,
	foodType *string,
	mealType *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("food").
			Title("Food Name").
			Placeholder("Enter food name...").
			Value(foodName),

		huh.NewInput().
			Key("quantity").
			Title("Quantity").
			Placeholder("Number of units...").
			Value(quantity),

		huh.NewInput().
			Key("expiry").
			Title("Expiry Date").
			Placeholder("YYYY-MM-DD").
			Value(expiry),

		huh.NewInput().
			Key("provider").
			Title("Provider ID").
			Value(providerID),

		huh.NewInput().
			Key("location").
			Title("Location").
			Placeholder("City...").
			Value(location),

		huh.NewSelect[string]().
			Key("food_type").
			Title("Food Type").
			Options(FoodTypeOptions()...).
			Value(foodType),

		huh.NewSelect[string]().
			Key("meal_type").
			Title("Meal Type").
			Options(MealTypeOptions()...).
			Value(mealType),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
