package models

// Provider represents a food donor (restaurant, grocery store, supermarket, ...)
// Providers own zero or more food listings.
type Provider struct {
	ID      int    // Unique identifier for the provider
	Name    string // Display name of the provider
	Type    string // Category label (e.g., "Restaurant", "Grocery Store")
	Address string
	City    string
	Contact string
}

// GetID returns the provider's ID. Used by the CLI quiet-mode output.
func (p *Provider) GetID() int { return p.ID }
