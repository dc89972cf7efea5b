package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bsan5566/food-waste/internal/app"
	"github.com/bsan5566/food-waste/internal/config"
	"github.com/bsan5566/food-waste/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB
	ctx context.Context
}

// NewCLI initializes the CLI with configuration and database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)
	application := app.New(repo, cfg)

	return &CLI{
		App: application,
		db:  db,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
