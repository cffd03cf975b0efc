// Package handler exposes the event cost engine over HTTP. Handlers bind
// the request, delegate to the service layer and translate domain errors
// into status codes; they never touch the store directly.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Joaolrm/quantodeu/internal/models"
	"github.com/Joaolrm/quantodeu/internal/reports"
)

// PeopleService is the slice of the people service the handlers need.
type PeopleService interface {
	Register(ctx context.Context, input models.CreatePeopleInput) (*models.People, string, error)
	Login(ctx context.Context, phoneNumber string) (*models.People, string, error)
	EventsByPhone(ctx context.Context, phoneNumber string) (*models.PeopleWithEvents, error)
	List(ctx context.Context) ([]models.People, error)
}

// EventService is the slice of the event service the handlers need.
type EventService interface {
	Create(ctx context.Context, ownerID int64, input models.CreateEventInput) (*models.Event, error)
	Details(ctx context.Context, eventID, actorID int64) (*models.EventDetails, error)
	AddParticipant(ctx context.Context, eventID, actorID, peopleID int64, selectedItems []int64) error
	Delete(ctx context.Context, eventID, actorID int64) error
	ResolveInvite(ctx context.Context, hash string) (*models.InviteView, error)
}

// ItemService is the slice of the item service the handlers need.
type ItemService interface {
	Create(ctx context.Context, actorID int64, input models.CreateItemInput) (*models.Item, error)
	Update(ctx context.Context, actorID, itemID int64, input models.UpdateItemInput) (*models.Item, error)
	Delete(ctx context.Context, actorID, itemID int64) error
	AddParticipant(ctx context.Context, actorID, itemID, peopleID int64) error
	RemoveParticipant(ctx context.Context, actorID, itemID, peopleID int64) error
}

// ReportService is the slice of the report service the handlers need.
type ReportService interface {
	ShoppingStatistics(ctx context.Context, eventID int64) (*reports.EventShoppingStatistics, error)
	CompleteReport(ctx context.Context, eventID int64) (*reports.EventCompleteReport, error)
	SpreadsheetReport(ctx context.Context, eventID int64) (*reports.EventSpreadsheetReport, error)
}

// Handler carries the services behind the HTTP surface.
type Handler struct {
	people  PeopleService
	events  EventService
	items   ItemService
	reports ReportService
}

// New creates a Handler.
func New(people PeopleService, events EventService, items ItemService, reports ReportService) *Handler {
	return &Handler{people: people, events: events, items: items, reports: reports}
}

// handleError maps a domain error to its HTTP status. Unrecognized errors
// are logged and hidden behind a generic 500.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPeopleNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPhoneTaken),
		errors.Is(err, models.ErrItemRequired),
		errors.Is(err, models.ErrNotMember):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		slog.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses a numeric path parameter, rejecting the request on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
