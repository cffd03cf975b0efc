package models

// Event represents a social event whose item costs are split among members.
// The invite hash is generated once at creation and is the only way to join
// without being the owner.
type Event struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the display name of the event (e.g. "Churras").
	Name string

	// Date is an ISO date string (YYYY-MM-DD).
	Date string

	// Address is the free-form location of the event.
	Address string

	// HashInvite is an opaque unguessable token granting join access.
	HashInvite string

	// OwnerID references the person who created the event. The owner is
	// always a member and the only one allowed to edit items.
	OwnerID int64
}

// EventWithAdmin is an event annotated with whether a given person owns it.
type EventWithAdmin struct {
	Event
	IsAdmin bool
}

// NewItem is an item nested in an event-creation request. When
// OwnerWantsThisItem is set on an optional item, the owner is pre-claimed as
// responsible for it in the same transaction.
type NewItem struct {
	Name               string
	IsRequired         bool
	TotalCost          float64
	OwnerWantsThisItem bool
}

// CreateEventInput carries the fields accepted at event creation.
type CreateEventInput struct {
	Name    string
	Date    string
	Address string
	Items   []NewItem
}
