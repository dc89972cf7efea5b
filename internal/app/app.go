package app

import (
	"github.com/bsan5566/food-waste/internal/config"
	"github.com/bsan5566/food-waste/internal/database"
	claimservice "github.com/bsan5566/food-waste/internal/services/claim"
	listingservice "github.com/bsan5566/food-waste/internal/services/listing"
	providerservice "github.com/bsan5566/food-waste/internal/services/provider"
	receiverservice "github.com/bsan5566/food-waste/internal/services/receiver"
	reportservice "github.com/bsan5566/food-waste/internal/services/report"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Configuration as loaded at startup
	Config *config.Config

	// Service layer (business logic)
	ProviderService providerservice.Service
	ReceiverService receiverservice.Service
	ListingService  listingservice.Service
	ClaimService    claimservice.Service
	ReportService   *reportservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, cfg *config.Config) *App {
	return &App{
		repo:            repo,
		Config:          cfg,
		ProviderService: providerservice.NewService(repo),
		ReceiverService: receiverservice.NewService(repo),
		ListingService:  listingservice.NewService(repo),
		ClaimService:    claimservice.NewService(repo),
		ReportService:   reportservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
