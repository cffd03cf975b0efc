package dto

import "github.com/Joaolrm/quantodeu/internal/models"

// PeopleResponse is the public view of a person.
type PeopleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// NewPeopleResponse converts a person model.
func NewPeopleResponse(p *models.People) PeopleResponse {
	return PeopleResponse{
		ID:          p.ID,
		Name:        p.Name,
		PhoneNumber: p.PhoneNumber,
		DateOfBirth: p.DateOfBirth,
		Gender:      string(p.Gender),
	}
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Token  string         `json:"token"`
	People PeopleResponse `json:"people"`
}

// EventSummaryResponse is one event row in a person's event list.
type EventSummaryResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Address    string `json:"address"`
	HashInvite string `json:"hashInvite"`
	IsAdmin    bool   `json:"isAdmin"`
}

// PeopleWithEventsResponse is the body of GET /people/:phone/events.
type PeopleWithEventsResponse struct {
	PeopleResponse
	Events []EventSummaryResponse `json:"events"`
}

// NewPeopleWithEventsResponse converts a person with their event list.
func NewPeopleWithEventsResponse(pe *models.PeopleWithEvents) PeopleWithEventsResponse {
	resp := PeopleWithEventsResponse{
		PeopleResponse: NewPeopleResponse(&pe.People),
		Events:         make([]EventSummaryResponse, 0, len(pe.Events)),
	}
	for _, e := range pe.Events {
		resp.Events = append(resp.Events, EventSummaryResponse{
			ID:         e.ID,
			Name:       e.Name,
			Date:       e.Date,
			Address:    e.Address,
			HashInvite: e.HashInvite,
			IsAdmin:    e.IsAdmin,
		})
	}
	return resp
}

// EventResponse is the body returned after creating an event.
type EventResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Address      string `json:"address"`
	HashInvite   string `json:"hashInvite"`
	EventOwnerID int64  `json:"eventOwnerId"`
}

// NewEventResponse converts an event model.
func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Date:         e.Date,
		Address:      e.Address,
		HashInvite:   e.HashInvite,
		EventOwnerID: e.OwnerID,
	}
}

// ParticipantRefResponse is the reduced person view inside item rosters.
type ParticipantRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemWithParticipantsResponse is one item in the event detail view, with
// everyone currently responsible for it. Required items list every member.
type ItemWithParticipantsResponse struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"name"`
	IsRequired   bool                     `json:"isRequired"`
	TotalCost    float64                  `json:"totalCost"`
	Participants []ParticipantRefResponse `json:"participants"`
}

// ActualUserResponse is the requesting person with their admin flag.
type ActualUserResponse struct {
	PeopleResponse
	Admin bool `json:"admin"`
}

// EventDetailsResponse is the body of GET /events/:id/people/:peopleId.
type EventDetailsResponse struct {
	ID         int64                          `json:"id"`
	Name       string                         `json:"name"`
	Date       string                         `json:"date"`
	Address    string                         `json:"address"`
	HashInvite string                         `json:"hashInvite"`
	Itens      []ItemWithParticipantsResponse `json:"itens"`
	ActualUser ActualUserResponse             `json:"actualUser"`
}

// NewEventDetailsResponse converts an event detail view.
func NewEventDetailsResponse(d *models.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		ID:         d.ID,
		Name:       d.Name,
		Date:       d.Date,
		Address:    d.Address,
		HashInvite: d.HashInvite,
		Itens:      make([]ItemWithParticipantsResponse, 0, len(d.Items)),
		ActualUser: ActualUserResponse{
			PeopleResponse: NewPeopleResponse(&d.ActualUser),
			Admin:          d.IsAdmin,
		},
	}
	for _, it := range d.Items {
		participants := make([]ParticipantRefResponse, 0, len(it.Participants))
		for _, p := range it.Participants {
			participants = append(participants, ParticipantRefResponse{ID: p.ID, Name: p.Name})
		}
		resp.Itens = append(resp.Itens, ItemWithParticipantsResponse{
			ID:           it.ID,
			Name:         it.Name,
			IsRequired:   it.IsRequired,
			TotalCost:    it.TotalCost,
			Participants: participants,
		})
	}
	return resp
}

// InviteItemResponse is the reduced item view on an invite preview.
type InviteItemResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsRequired bool   `json:"isRequired"`
}

// InviteResponse is the body of GET /events/by-hash/:hash. Costs and
// participant rosters are withheld until the visitor joins.
type InviteResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Date       string               `json:"date"`
	Address    string               `json:"address"`
	HashInvite string               `json:"hashInvite"`
	Items      []InviteItemResponse `json:"items"`
}

// NewInviteResponse converts an invite view.
func NewInviteResponse(v *models.InviteView) InviteResponse {
	resp := InviteResponse{
		ID:         v.ID,
		Name:       v.Name,
		Date:       v.Date,
		Address:    v.Address,
		HashInvite: v.HashInvite,
		Items:      make([]InviteItemResponse, 0, len(v.Items)),
	}
	for _, it := range v.Items {
		resp.Items = append(resp.Items, InviteItemResponse{
			ID:         it.ID,
			Name:       it.Name,
			IsRequired: it.IsRequired,
		})
	}
	return resp
}

// ItemResponse is the body returned after creating or updating an item.
type ItemResponse struct {
	ID         int64   `json:"id"`
	EventID    int64   `json:"eventId"`
	Name       string  `json:"name"`
	IsRequired bool    `json:"isRequired"`
	TotalCost  float64 `json:"totalCost"`
}

// NewItemResponse converts an item model.
func NewItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:         it.ID,
		EventID:    it.EventID,
		Name:       it.Name,
		IsRequired: it.IsRequired,
		TotalCost:  it.TotalCost,
	}
}
