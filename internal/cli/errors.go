package cli

import (
	"errors"

	claimservice "github.com/bsan5566/food-waste/internal/services/claim"
	listingservice "github.com/bsan5566/food-waste/internal/services/listing"
	providerservice "github.com/bsan5566/food-waste/internal/services/provider"
	receiverservice "github.com/bsan5566/food-waste/internal/services/receiver"
	reportservice "github.com/bsan5566/food-waste/internal/services/report"
)

// Classify maps a service error to an output code string and process exit
// code, so every command reports validation, referential and not-found
// failures the same way.
func Classify(err error) (code string, exitCode int) {
	switch {
	case errors.Is(err, providerservice.ErrNotFound),
		errors.Is(err, receiverservice.ErrNotFound),
		errors.Is(err, listingservice.ErrNotFound),
		errors.Is(err, claimservice.ErrNotFound):
		return "NOT_FOUND", ExitNotFound

	case errors.Is(err, providerservice.ErrHasListings),
		errors.Is(err, receiverservice.ErrHasClaims),
		errors.Is(err, listingservice.ErrHasClaims),
		errors.Is(err, listingservice.ErrProviderNotFound),
		errors.Is(err, claimservice.ErrListingNotFound),
		errors.Is(err, claimservice.ErrReceiverNotFound):
		return "CONSTRAINT_VIOLATION", ExitConstraint

	case errors.Is(err, providerservice.ErrEmptyName),
		errors.Is(err, providerservice.ErrEmptyType),
		errors.Is(err, providerservice.ErrEmptyCity),
		errors.Is(err, providerservice.ErrInvalidID),
		errors.Is(err, receiverservice.ErrEmptyName),
		errors.Is(err, receiverservice.ErrEmptyCity),
		errors.Is(err, receiverservice.ErrInvalidID),
		errors.Is(err, listingservice.ErrEmptyFoodName),
		errors.Is(err, listingservice.ErrEmptyLocation),
		errors.Is(err, listingservice.ErrNegativeQuantity),
		errors.Is(err, listingservice.ErrInvalidExpiryDate),
		errors.Is(err, listingservice.ErrInvalidID),
		errors.Is(err, claimservice.ErrInvalidStatus),
		errors.Is(err, claimservice.ErrInvalidTimestamp),
		errors.Is(err, claimservice.ErrInvalidID),
		errors.Is(err, reportservice.ErrEmptyCity),
		errors.Is(err, reportservice.ErrNegativeDays),
		errors.Is(err, reportservice.ErrNegativeThreshold):
		return "VALIDATION_ERROR", ExitValidation

	case errors.Is(err, reportservice.ErrUnknownReport):
		return "UNKNOWN_REPORT", ExitUsage
	}

	return "INTERNAL_ERROR", ExitError
}
