package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/services"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

// CreateRegistration handles POST /registered-camps. The participant email
// comes from the token, never the body.
func (h *Handler) CreateRegistration(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ParticipantEmail = requesterEmail(c)

	reg, err := h.reconciler.Register(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": reg.ID, "registration": reg})
}

// ListRegistrations handles GET /registered-camps/:email with free-text
// search over the denormalized camp fields and page/limit pagination.
// Participants can only list their own registrations; organizers can list
// anyone's.
func (h *Handler) ListRegistrations(c *gin.Context) {
	email := c.Param("email")
	if email != requesterEmail(c) && !h.isOrganizer(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := h.db.Model(&models.Registration{}).Where("participant_email = ?", email)

	if search := c.Query("search"); search != "" {
		pattern := utils.SanitizeSearchQuery(search)
		query = query.Where(
			"LOWER(camp_name) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?) OR LOWER(healthcare_professional) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		handleError(c, err)
		return
	}

	var registrations []models.Registration
	if err := query.
		Order("created_at asc, id asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&registrations).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registrations": registrations,
		"count":         total,
		"page":          page,
		"limit":         limit,
	})
}

type confirmInput struct {
	CampID string `json:"campId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// SetConfirmationStatus handles PATCH /registered-camps/:email (organizer
// only). Unknown status strings are rejected before anything is written.
func (h *Handler) SetConfirmationStatus(c *gin.Context) {
	var input confirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.reconciler.SetConfirmationStatus(
		c.Request.Context(),
		c.Param("email"),
		input.CampID,
		models.ConfirmationStatus(input.Status),
	)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelRegistration handles DELETE /registered-camps/:id. A participant may
// cancel their own registration; organizers may cancel any.
func (h *Handler) CancelRegistration(c *gin.Context) {
	id := c.Param("id")

	var reg models.Registration
	if err := h.db.First(&reg, "id = ?", id).Error; err == nil {
		if reg.ParticipantEmail != requesterEmail(c) && !h.isOrganizer(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	if err := h.reconciler.Cancel(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
