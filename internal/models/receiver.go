package models

// Receiver represents an organization or individual that claims food
// listings (NGO, shelter, charity, ...).
type Receiver struct {
	ID      int
	Name    string
	Type    string
	City    string
	Contact string
}

// GetID returns the receiver's ID. Used by the CLI quiet-mode output.
func (r *Receiver) GetID() int { return r.ID }
