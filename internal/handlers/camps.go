package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

const popularCampsCacheKey = "popular_camps"

type campInput struct {
	CampName               string    `json:"campName" binding:"required"`
	Image                  string    `json:"image"`
	CampFees               float64   `json:"campFees"`
	DateTime               time.Time `json:"dateTime" binding:"required"`
	Location               string    `json:"location" binding:"required"`
	HealthcareProfessional string    `json:"healthcareProfessional"`
	Description            string    `json:"description"`
}

// ListCamps handles GET /all-camps?search=&sortBy=.
func (h *Handler) ListCamps(c *gin.Context) {
	query := h.db.Model(&models.Camp{})

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(camp_name) LIKE LOWER(?)", utils.SanitizeSearchQuery(search))
	}

	switch c.Query("sortBy") {
	case "most-registered":
		query = query.Order("participant_count desc")
	case "camp-fees":
		query = query.Order("camp_fees asc")
	case "alphabetical":
		query = query.Order("camp_name asc")
	default:
		query = query.Order("created_at desc")
	}

	var camps []models.Camp
	if err := query.Find(&camps).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, camps)
}

// GetCamp handles GET /camp/:id.
func (h *Handler) GetCamp(c *gin.Context) {
	var camp models.Camp
	if err := h.db.First(&camp, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Camp not found"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, camp)
}

// PopularCamps handles GET /popular-camps: the six camps with the highest
// participant counts, served from the Redis cache when warm.
func (h *Handler) PopularCamps(c *gin.Context) {
	var camps []models.Camp
	if err := h.cache.Get(c.Request.Context(), popularCampsCacheKey, &camps); err == nil {
		c.JSON(http.StatusOK, camps)
		return
	}

	if err := h.db.Order("participant_count desc").Limit(6).Find(&camps).Error; err != nil {
		handleError(c, err)
		return
	}

	if err := h.cache.Set(c.Request.Context(), popularCampsCacheKey, camps, 5*time.Minute); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache popular camps")
	}

	c.JSON(http.StatusOK, camps)
}

// AddCamp handles POST /add-camp (organizer only).
func (h *Handler) AddCamp(c *gin.Context) {
	var input campInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	camp := models.Camp{
		ID:                     utils.GenerateID(),
		CampName:               input.CampName,
		Image:                  input.Image,
		CampFees:               input.CampFees,
		DateTime:               input.DateTime,
		Location:               input.Location,
		HealthcareProfessional: input.HealthcareProfessional,
		Description:            input.Description,
		ParticipantCount:       0,
		OrganizerEmail:         requesterEmail(c),
	}
	if err := h.db.Create(&camp).Error; err != nil {
		handleError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), popularCampsCacheKey)
	c.JSON(http.StatusCreated, gin.H{"insertedId": camp.ID})
}

// UpdateCamp handles PUT /update-camp/:id (organizer only).
func (h *Handler) UpdateCamp(c *gin.Context) {
	var input campInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.db.Model(&models.Camp{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"camp_name":               input.CampName,
			"image":                   input.Image,
			"camp_fees":               input.CampFees,
			"date_time":               input.DateTime,
			"location":                input.Location,
			"healthcare_professional": input.HealthcareProfessional,
			"description":             input.Description,
		})
	if res.Error != nil {
		handleError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camp not found"})
		return
	}

	h.cache.Delete(c.Request.Context(), popularCampsCacheKey)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCamp handles DELETE /delete-camp/:id (organizer only).
func (h *Handler) DeleteCamp(c *gin.Context) {
	res := h.db.Delete(&models.Camp{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		handleError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camp not found"})
		return
	}

	h.cache.Delete(c.Request.Context(), popularCampsCacheKey)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OrganizerCamps handles GET /camps/organizer/:email (organizer only).
func (h *Handler) OrganizerCamps(c *gin.Context) {
	var camps []models.Camp
	if err := h.db.
		Where("organizer_email = ?", c.Param("email")).
		Order("created_at desc").
		Find(&camps).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, camps)
}
