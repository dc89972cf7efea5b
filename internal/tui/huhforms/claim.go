package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/bsan5566/food-waste/internal/models"
)

// StatusOptions returns the claim status choices.
func StatusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.ClaimStatuses))
	for _, s := range models.ClaimStatuses {
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}

// CreateClaimForm creates a huh form for recording a claim.
// Listing and receiver IDs are captured as strings and parsed by the caller.
func CreateClaimForm(
	listingID *string,
	receiverID *string,
	status *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("listing").
			Title("Food Listing ID").
			Value(listingID),

		huh.NewInput().
			Key("receiver").
			Title("Receiver ID").
			Value(receiverID),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(StatusOptions()...).
			Value(status),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
