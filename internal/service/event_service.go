package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Joaolrm/quantodeu/internal/models"
	"github.com/Joaolrm/quantodeu/internal/storage"
)

// Notifier receives event activity. Implementations must be safe for
// concurrent use and must never block the calling request.
type Notifier interface {
	ParticipantJoined(event *models.Event, people *models.People)
}

// EventService handles the event lifecycle: creation, the detail view,
// joining, invite resolution and deletion.
type EventService struct {
	store    storage.Store
	notifier Notifier
}

// NewEventService creates an EventService.
func NewEventService(store storage.Store, notifier Notifier) *EventService {
	return &EventService{store: store, notifier: notifier}
}

// Create persists a new event owned by ownerID together with its initial
// items. The owner becomes the first member and is pre-claimed on every
// optional item they marked as wanted.
func (s *EventService) Create(ctx context.Context, ownerID int64, input models.CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if input.Date == "" {
		return nil, fmt.Errorf("%w: date is required", models.ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", models.ErrValidation)
	}
	for _, item := range input.Items {
		if err := validateItemFields(item.Name, item.TotalCost); err != nil {
			return nil, err
		}
	}

	if _, err := s.store.GetPeopleByID(ctx, ownerID); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:       strings.TrimSpace(input.Name),
		Date:       input.Date,
		Address:    strings.TrimSpace(input.Address),
		HashInvite: newInviteHash(),
		OwnerID:    ownerID,
	}
	if err := s.store.CreateEvent(ctx, event, input.Items); err != nil {
		return nil, err
	}
	return event, nil
}

// Details returns the event graph as seen by actorID, with responsibility
// for required items expanded to every member. The actor must be a member.
func (s *EventService) Details(ctx context.Context, eventID, actorID int64) (*models.EventDetails, error) {
	g, err := s.store.GetEventGraph(ctx, eventID)
	if err != nil {
		return nil, err
	}

	actor := g.Member(actorID)
	if actor == nil {
		return nil, fmt.Errorf("%w: person %d has not joined event %d", models.ErrNotMember, actorID, eventID)
	}

	alloc := buildAllocation(g)

	details := &models.EventDetails{
		Event:      g.Event,
		Items:      make([]models.ItemWithPeople, 0, len(g.Items)),
		ActualUser: *actor,
		IsAdmin:    g.Event.OwnerID == actorID,
	}
	for _, ia := range alloc.Items {
		participants := make([]models.PeopleRef, 0, len(ia.Responsible))
		for _, id := range ia.Responsible {
			if m := g.Member(id); m != nil {
				participants = append(participants, models.PeopleRef{ID: m.ID, Name: m.Name})
			}
		}
		details.Items = append(details.Items, models.ItemWithPeople{
			Item: models.Item{
				ID:         ia.ItemID,
				EventID:    g.Event.ID,
				Name:       ia.Name,
				IsRequired: ia.IsRequired,
				TotalCost:  ia.TotalCost,
			},
			Participants: participants,
		})
	}
	return details, nil
}

// AddParticipant joins peopleID to the event with an initial set of optional
// item selections. People may only join themselves, except for the owner who
// may add anyone. A successful join is announced through the notifier.
func (s *EventService) AddParticipant(ctx context.Context, eventID, actorID, peopleID int64, selectedItems []int64) error {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if actorID != peopleID && actorID != event.OwnerID {
		return fmt.Errorf("%w: only the owner may add other people", models.ErrNotOwner)
	}

	people, err := s.store.GetPeopleByID(ctx, peopleID)
	if err != nil {
		return err
	}

	if err := s.store.AddEventMember(ctx, eventID, peopleID, selectedItems); err != nil {
		return err
	}

	if s.notifier != nil {
		go s.notifier.ParticipantJoined(event, people)
	}
	return nil
}

// Delete removes an event. Only the owner may delete it.
func (s *EventService) Delete(ctx context.Context, eventID, actorID int64) error {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner may delete the event", models.ErrNotOwner)
	}
	return s.store.DeleteEvent(ctx, eventID)
}

// ResolveInvite returns the join preview behind an invite hash: the event
// plus its items without costs or rosters. Unknown and malformed hashes are
// indistinguishable to the caller.
func (s *EventService) ResolveInvite(ctx context.Context, hash string) (*models.InviteView, error) {
	event, err := s.store.GetEventByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return nil, models.ErrInviteNotFound
		}
		return nil, err
	}

	g, err := s.store.GetEventGraph(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	view := &models.InviteView{
		Event: g.Event,
		Items: make([]models.InviteItem, 0, len(g.Items)),
	}
	for _, it := range g.Items {
		view.Items = append(view.Items, models.InviteItem{
			ID:         it.ID,
			Name:       it.Name,
			IsRequired: it.IsRequired,
		})
	}
	return view, nil
}

// newInviteHash generates the opaque join token for a new event.
func newInviteHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
