package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaolrm/quantodeu/internal/handler/dto"
	"github.com/Joaolrm/quantodeu/internal/middleware"
	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateEvent handles POST /events. The owner is the authenticated person;
// a mismatching eventOwnerId in the body is rejected.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	actorID := middleware.PeopleID(c)
	if req.EventOwnerID != 0 && req.EventOwnerID != actorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "eventOwnerId does not match the authenticated person"})
		return
	}

	items := make([]models.NewItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		items = append(items, models.NewItem{
			Name:               it.Name,
			IsRequired:         it.IsRequired,
			TotalCost:          it.TotalCost,
			OwnerWantsThisItem: it.OwnerWantsThisItem,
		})
	}

	event, err := h.events.Create(c.Request.Context(), actorID, models.CreateEventInput{
		Name:    req.Name,
		Date:    req.Date,
		Address: req.Address,
		Items:   items,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEventResponse(event))
}

// GetEventDetails handles GET /events/:id/people/:peopleId. The path person
// must be the authenticated person.
func (h *Handler) GetEventDetails(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	peopleID, ok := pathID(c, "peopleId")
	if !ok {
		return
	}
	if peopleID != middleware.PeopleID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot view the event as another person"})
		return
	}

	details, err := h.events.Details(c.Request.Context(), eventID, peopleID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventDetailsResponse(details))
}

// AddEventParticipant handles POST /events/:id/add-participant.
func (h *Handler) AddEventParticipant(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	err := h.events.AddParticipant(c.Request.Context(), eventID, middleware.PeopleID(c), req.PeopleID, req.SelectedOptionalItemsID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteEvent handles DELETE /events/:id.
func (h *Handler) DeleteEvent(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.events.Delete(c.Request.Context(), eventID, middleware.PeopleID(c)); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveInvite handles GET /events/by-hash/:hash. Public: a visitor needs
// the preview before they have an account.
func (h *Handler) ResolveInvite(c *gin.Context) {
	view, err := h.events.ResolveInvite(c.Request.Context(), c.Param("hash"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInviteResponse(view))
}
