package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ParticipantAnalytics handles GET /analytics/:email: each of the
// participant's registrations joined with its payment, if any.
func (h *Handler) ParticipantAnalytics(c *gin.Context) {
	email := c.Param("email")
	if email != requesterEmail(c) && !h.isOrganizer(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	rows, err := h.reconciler.ParticipantAnalytics(c.Request.Context(), email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
