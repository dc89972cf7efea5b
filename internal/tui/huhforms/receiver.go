package huhforms

import "github.com/charmbracelet/huh"

// CreateReceiverForm creates a huh form for adding a receiver.
func CreateReceiverForm(
	name *string,
	rtype *string,
	city *string,
	contact *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Receiver Name").
			Placeholder("Enter receiver name...").
			Value(name),

		huh.NewInput().
			Key("type").
			Title("Receiver Type").
			Placeholder("NGO, Shelter, Charity, Individual...").
			Value(rtype),

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
