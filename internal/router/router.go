// Package router wires the HTTP surface: middleware chain, public routes
// and the authenticated API.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Joaolrm/quantodeu/internal/auth"
	"github.com/Joaolrm/quantodeu/internal/handler"
	"github.com/Joaolrm/quantodeu/internal/middleware"
)

// New builds the gin engine with all routes registered.
//
// Registration, login, invite resolution, health and metrics are public;
// everything else requires a session token.
func New(h *handler.Handler, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/people", h.CreatePeople)
	r.POST("/people/login", h.Login)
	r.GET("/events/by-hash/:hash", h.ResolveInvite)

	authed := r.Group("/", middleware.RequireAuth(jwtManager))
	{
		authed.GET("/people", h.ListPeople)
		authed.GET("/people/:phone/events", h.GetPeopleEvents)

		authed.POST("/events", h.CreateEvent)
		authed.DELETE("/events/:id", h.DeleteEvent)
		authed.GET("/events/:id/people/:peopleId", h.GetEventDetails)
		authed.POST("/events/:id/add-participant", h.AddEventParticipant)

		authed.GET("/events/:id/shopping-statistics", h.GetShoppingStatistics)
		authed.GET("/events/:id/complete-report", h.GetCompleteReport)
		authed.GET("/events/:id/spreadsheet-report", h.GetSpreadsheetReport)

		authed.POST("/items", h.CreateItem)
		authed.PUT("/items/:id", h.UpdateItem)
		authed.DELETE("/items/:id", h.DeleteItem)
		authed.POST("/items/:id/add-participant", h.AddItemParticipant)
		authed.DELETE("/items/:id/participant/:peopleId/event/:eventId", h.RemoveItemParticipant)
	}

	return r
}
