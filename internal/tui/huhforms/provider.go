// Package huhforms builds the huh forms used by the manage tab.
package huhforms

import "github.com/charmbracelet/huh"

// CreateProviderForm creates a huh form for adding a provider.
// No confirmation field is used - the form saves on completion.
func CreateProviderForm(
	name *string,
	ptype *string,
	address *string,
	city *string,
	contact *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Provider Name").
			Placeholder("Enter provider name...").
			Value(name),

		huh.NewInput().
			Key("type").
			Title("Provider Type").
			Placeholder("Restaurant, Grocery Store, Supermarket...").
			Value(ptype),

		huh.NewInput().
			Key("address").
			Title("Address").
			Value(address),

		huh.NewInput().
			Key("city").
			Title("City").
			Value(city),

		huh.NewInput().
			Key("contact").
			Title("Contact").
			Placeholder("Phone or email...").
			Value(contact),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
