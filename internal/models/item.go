package models

// Item represents a single thing an event needs.
// TotalCost is the absolute amount for the whole item, never a per-person
// value; per-person shares are derived at read time.
type Item struct {
	// ID is the store-assigned identifier.
	ID int64

	// EventID references the owning event.
	EventID int64

	// Name is the display name of the item (e.g. "Carne").
	Name string

	// IsRequired marks an item whose cost is split across every event
	// member. Optional items are split only across explicit selections.
	IsRequired bool

	// TotalCost is the total amount for the item, >= 0.
	TotalCost float64
}

// CreateItemInput carries the fields accepted when adding an item to an
// existing event.
type CreateItemInput struct {
	EventID    int64
	Name       string
	IsRequired bool
	TotalCost  float64
}

// UpdateItemInput carries the fields the owner may edit on an item.
type UpdateItemInput struct {
	Name       string
	IsRequired bool
	TotalCost  float64
}
