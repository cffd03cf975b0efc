package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaolrm/quantodeu/internal/handler/dto"
	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreatePeople handles POST /people.
func (h *Handler) CreatePeople(c *gin.Context) {
	var req dto.CreatePeopleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	people, token, err := h.people.Register(c.Request.Context(), models.CreatePeopleInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		Gender:      models.Gender(req.Gender),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:  token,
		People: dto.NewPeopleResponse(people),
	})
}

// Login handles POST /people/login.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	people, token, err := h.people.Login(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:  token,
		People: dto.NewPeopleResponse(people),
	})
}

// ListPeople handles GET /people.
func (h *Handler) ListPeople(c *gin.Context) {
	people, err := h.people.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]dto.PeopleResponse, 0, len(people))
	for i := range people {
		resp = append(resp, dto.NewPeopleResponse(&people[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetPeopleEvents handles GET /people/:phone/events.
func (h *Handler) GetPeopleEvents(c *gin.Context) {
	withEvents, err := h.people.EventsByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPeopleWithEventsResponse(withEvents))
}
