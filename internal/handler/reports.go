package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetShoppingStatistics handles GET /events/:id/shopping-statistics.
func (h *Handler) GetShoppingStatistics(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	stats, err := h.reports.ShoppingStatistics(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCompleteReport handles GET /events/:id/complete-report.
func (h *Handler) GetCompleteReport(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.reports.CompleteReport(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSpreadsheetReport handles GET /events/:id/spreadsheet-report.
func (h *Handler) GetSpreadsheetReport(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.reports.SpreadsheetReport(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
