package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaolrm/quantodeu/internal/handler/dto"
	"github.com/Joaolrm/quantodeu/internal/middleware"
	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateItem handles POST /items.
func (h *Handler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, err := h.items.Create(c.Request.Context(), middleware.PeopleID(c), models.CreateItemInput{
		EventID:    req.EventID,
		Name:       req.Name,
		IsRequired: req.IsRequired,
		TotalCost:  req.TotalCost,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewItemResponse(item))
}

// UpdateItem handles PUT /items/:id.
func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, err := h.items.Update(c.Request.Context(), middleware.PeopleID(c), itemID, models.UpdateItemInput{
		Name:       req.Name,
		IsRequired: req.IsRequired,
		TotalCost:  req.TotalCost,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// DeleteItem handles DELETE /items/:id.
func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), middleware.PeopleID(c), itemID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddItemParticipant handles POST /items/:id/add-participant.
func (h *Handler) AddItemParticipant(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ToggleItemParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	err := h.items.AddParticipant(c.Request.Context(), middleware.PeopleID(c), itemID, req.PeopleID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveItemParticipant handles
// DELETE /items/:id/participant/:peopleId/event/:eventId.
func (h *Handler) RemoveItemParticipant(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	peopleID, ok := pathID(c, "peopleId")
	if !ok {
		return
	}

	err := h.items.RemoveParticipant(c.Request.Context(), middleware.PeopleID(c), itemID, peopleID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
