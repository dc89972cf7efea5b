package huhforms

import "github.com/charmbracelet/huh"

// CreateDeleteForm creates a huh form that asks for the ID of a record to
// delete, plus a confirmation. entity names the table for the titles.
func CreateDeleteForm(
	entity string,
	id *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("id").
			Title("Delete " + entity + " by ID").
			Value(id),

		huh.NewConfirm().
			Key("confirm").
			Title("Really delete this " + entity + "?").
			Affirmative("Delete").
			Negative("Cancel").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
