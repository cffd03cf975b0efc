package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Joaolrm/quantodeu/internal/models"
	"github.com/Joaolrm/quantodeu/internal/storage"
)

// ItemService handles item CRUD and participation toggles. Structural edits
// are owner-only; toggles are open to every member for their own row.
type ItemService struct {
	store storage.Store
}

// NewItemService creates an ItemService.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// Create adds an item to an existing event. Owner only.
func (s *ItemService) Create(ctx context.Context, actorID int64, input models.CreateItemInput) (*models.Item, error) {
	if err := validateItemFields(input.Name, input.TotalCost); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, input.EventID, actorID); err != nil {
		return nil, err
	}

	item := &models.Item{
		EventID:    input.EventID,
		Name:       strings.TrimSpace(input.Name),
		IsRequired: input.IsRequired,
		TotalCost:  input.TotalCost,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces an item's name, required flag and cost. Owner only.
// Turning an optional item required discards its explicit selections.
func (s *ItemService) Update(ctx context.Context, actorID, itemID int64, input models.UpdateItemInput) (*models.Item, error) {
	if err := validateItemFields(input.Name, input.TotalCost); err != nil {
		return nil, err
	}

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, item.EventID, actorID); err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.IsRequired = input.IsRequired
	item.TotalCost = input.TotalCost
	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item and everyone's participation in it. Owner only.
func (s *ItemService) Delete(ctx context.Context, actorID, itemID int64) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(ctx, item.EventID, actorID); err != nil {
		return err
	}
	return s.store.DeleteItem(ctx, itemID)
}

// AddParticipant opts peopleID into an optional item. People may only toggle
// their own participation, except for the owner who may toggle anyone's.
func (s *ItemService) AddParticipant(ctx context.Context, actorID, itemID, peopleID int64) error {
	if err := s.authorizeToggle(ctx, actorID, itemID, peopleID); err != nil {
		return err
	}
	return s.store.AddItemParticipant(ctx, itemID, peopleID)
}

// RemoveParticipant opts peopleID out of an optional item, with the same
// authorization rules as AddParticipant.
func (s *ItemService) RemoveParticipant(ctx context.Context, actorID, itemID, peopleID int64) error {
	if err := s.authorizeToggle(ctx, actorID, itemID, peopleID); err != nil {
		return err
	}
	return s.store.RemoveItemParticipant(ctx, itemID, peopleID)
}

func (s *ItemService) authorizeToggle(ctx context.Context, actorID, itemID, peopleID int64) error {
	if actorID == peopleID {
		return nil
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	return s.requireOwner(ctx, item.EventID, actorID)
}

func (s *ItemService) requireOwner(ctx context.Context, eventID, actorID int64) error {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != actorID {
		return fmt.Errorf("%w: only the event owner may do this", models.ErrNotOwner)
	}
	return nil
}

func validateItemFields(name string, totalCost float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name is required", models.ErrValidation)
	}
	if totalCost < 0 {
		return fmt.Errorf("%w: item cost must not be negative", models.ErrValidation)
	}
	return nil
}
