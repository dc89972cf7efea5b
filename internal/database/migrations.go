package database

import "database/sql"

// runMigrations creates the four-table schema and its indexes.
// Foreign keys are RESTRICT: deleting a provider with listings, or a
// listing/receiver with claims, is rejected rather than cascaded.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS providers (
			provider_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			address TEXT,
			city TEXT NOT NULL,
			contact TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS receivers (
			receiver_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT,
			city TEXT NOT NULL,
			contact TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS food_listings (
			food_id INTEGER PRIMARY KEY AUTOINCREMENT,
			food_name TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 0),
			expiry_date TEXT NOT NULL,
			provider_id INTEGER NOT NULL,
			provider_type TEXT NOT NULL,
			location TEXT NOT NULL,
			food_type TEXT,
			meal_type TEXT,
			FOREIGN KEY (provider_id) REFERENCES providers(provider_id) ON DELETE RESTRICT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS claims (
			claim_id INTEGER PRIMARY KEY AUTOINCREMENT,
			food_id INTEGER NOT NULL,
			receiver_id INTEGER NOT NULL,
			status TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			FOREIGN KEY (food_id) REFERENCES food_listings(food_id) ON DELETE RESTRICT,
			FOREIGN KEY (receiver_id) REFERENCES receivers(receiver_id) ON DELETE RESTRICT
		)
	`)
	if err != nil {
		return err
	}

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_food_provider ON food_listings(provider_id)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_food ON claims(food_id)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_receiver ON claims(receiver_id)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
