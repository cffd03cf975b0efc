// Package dto defines the JSON request and response shapes of the HTTP API.
// Field names follow the contract the frontend was built against, including
// the "itens" spelling on event payloads.
package dto

// CreatePeopleRequest is the body of POST /people.
type CreatePeopleRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// LoginRequest is the body of POST /people/login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// NewItemRequest is an item nested in an event-creation body.
type NewItemRequest struct {
	Name               string  `json:"name"`
	IsRequired         bool    `json:"isRequired"`
	TotalCost          float64 `json:"totalCost"`
	OwnerWantsThisItem bool    `json:"ownerWantsThisItem"`
}

// CreateEventRequest is the body of POST /events. EventOwnerID is optional;
// when present it must match the authenticated person.
type CreateEventRequest struct {
	Name         string           `json:"name"`
	Date         string           `json:"date"`
	Address      string           `json:"address"`
	EventOwnerID int64            `json:"eventOwnerId"`
	Itens        []NewItemRequest `json:"itens"`
}

// AddParticipantRequest is the body of POST /events/:id/add-participant.
type AddParticipantRequest struct {
	PeopleID                int64   `json:"peopleId"`
	SelectedOptionalItemsID []int64 `json:"selectedOptionalItemsId"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	EventID    int64   `json:"eventId"`
	Name       string  `json:"name"`
	IsRequired bool    `json:"isRequired"`
	TotalCost  float64 `json:"totalCost"`
}

// UpdateItemRequest is the body of PUT /items/:id.
type UpdateItemRequest struct {
	Name       string  `json:"name"`
	IsRequired bool    `json:"isRequired"`
	TotalCost  float64 `json:"totalCost"`
}

// ToggleItemParticipantRequest is the body of POST /items/:id/add-participant.
type ToggleItemParticipantRequest struct {
	EventID  int64 `json:"eventId"`
	PeopleID int64 `json:"peopleId"`
}
