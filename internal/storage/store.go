// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// Store defines the interface for the event cost engine's persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
//
// All mutations are transactional: a validation failure leaves the store
// unchanged. Toggle operations on the participation edge are applied as
// atomic mutations guarded by the item's current state, so concurrent
// toggles on the same item never lose an update and never apply to an item
// that is simultaneously being edited or deleted.
type Store interface {
	// CreatePeople persists a new person and populates their ID.
	// Returns models.ErrPhoneTaken when the phone number is registered.
	CreatePeople(ctx context.Context, people *models.People) error

	// GetPeopleByID retrieves a person by ID.
	// Returns models.ErrPeopleNotFound when there is no match.
	GetPeopleByID(ctx context.Context, id int64) (*models.People, error)

	// GetPeopleByPhone retrieves a person by normalized phone number.
	// Returns models.ErrPeopleNotFound when there is no match.
	GetPeopleByPhone(ctx context.Context, phone string) (*models.People, error)

	// ListPeople returns every registered person.
	ListPeople(ctx context.Context) ([]models.People, error)

	// ListEventsByPeople returns every event the person owns or joined,
	// annotated with whether they are the owner.
	ListEventsByPeople(ctx context.Context, peopleID int64) ([]models.EventWithAdmin, error)

	// CreateEvent atomically persists an event, its nested items, the
	// owner's membership and any owner pre-claims on optional items.
	// The event's ID must be unset; it is populated on success.
	CreateEvent(ctx context.Context, event *models.Event, items []models.NewItem) error

	// GetEvent retrieves an event by ID.
	// Returns models.ErrEventNotFound when there is no match.
	GetEvent(ctx context.Context, id int64) (*models.Event, error)

	// GetEventByHash retrieves an event by invite hash.
	// Returns models.ErrEventNotFound when there is no match.
	GetEventByHash(ctx context.Context, hash string) (*models.Event, error)

	// GetEventGraph retrieves the event with its items, selection sets and
	// members (join order, owner first) in one consistent read.
	GetEventGraph(ctx context.Context, id int64) (*models.EventGraph, error)

	// DeleteEvent removes an event and cascades its items, memberships and
	// participations.
	DeleteEvent(ctx context.Context, id int64) error

	// AddEventMember atomically records a join: the membership row plus one
	// participation row per selected optional item. Selected ids must be
	// optional items of this event, otherwise nothing is written.
	AddEventMember(ctx context.Context, eventID, peopleID int64, selectedOptionalItems []int64) error

	// IsEventMember reports whether the person is a member of the event.
	IsEventMember(ctx context.Context, eventID, peopleID int64) (bool, error)

	// CreateItem persists a new item under an existing event and populates
	// its ID.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by ID.
	// Returns models.ErrItemNotFound when there is no match.
	GetItem(ctx context.Context, id int64) (*models.Item, error)

	// UpdateItem replaces the item's name, required flag and total cost.
	// Turning an optional item required clears its participation rows in
	// the same transaction (responsibility becomes membership-derived).
	UpdateItem(ctx context.Context, item *models.Item) error

	// DeleteItem removes an item and cascades its participation rows.
	DeleteItem(ctx context.Context, id int64) error

	// AddItemParticipant records that the person splits the item's cost.
	// Guards, checked inside the transaction: the item must exist and be
	// optional (models.ErrItemRequired otherwise) and the person must be a
	// member of the item's event (models.ErrNotMember). Adding an existing
	// participation is a no-op.
	AddItemParticipant(ctx context.Context, itemID, peopleID int64) error

	// RemoveItemParticipant removes the participation edge, with the same
	// guards as AddItemParticipant. Removing a missing edge is a no-op.
	RemoveItemParticipant(ctx context.Context, itemID, peopleID int64) error

	// Close releases any resources held by the store.
	Close() error
}
