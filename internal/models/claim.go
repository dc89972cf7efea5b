package models

// Claim represents a receiver's request against a specific food listing.
// Status is stored lowercase; see normalization in the claim service.
type Claim struct {
	ID         int
	FoodID     int
	ReceiverID int
	Status     string // one of StatusPending, StatusCompleted, StatusCancelled
	Timestamp  string // YYYY-MM-DD HH:MM:SS
}

// GetID returns the claim's ID. Used by the CLI quiet-mode output.
func (c *Claim) GetID() int { return c.ID }
