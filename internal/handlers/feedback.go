package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

type feedbackInput struct {
	CampID           string `json:"campId" binding:"required"`
	Rating           int    `json:"rating" binding:"required,min=1,max=5"`
	Comment          string `json:"comment"`
	ParticipantName  string `json:"participantName"`
	ParticipantPhoto string `json:"participantPhoto"`
}

// CreateFeedback handles POST /feedback. Only a participant holding a paid,
// confirmed registration for the camp may rate it.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var input feedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := requesterEmail(c)

	var reg models.Registration
	err := h.db.First(&reg,
		"camp_id = ? AND participant_email = ? AND payment_status = ? AND confirmation_status = ?",
		input.CampID, email, models.PaymentPaid, models.ConfirmationConfirmed,
	).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Feedback requires a paid, confirmed registration"})
		return
	}

	feedback := models.Feedback{
		ID:               utils.GenerateID(),
		CampID:           input.CampID,
		ParticipantEmail: email,
		ParticipantName:  input.ParticipantName,
		ParticipantPhoto: input.ParticipantPhoto,
		Rating:           input.Rating,
		Comment:          input.Comment,
		CampName:         reg.CampName,
		CreatedAt:        time.Now(),
	}
	if err := h.db.Create(&feedback).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": feedback.ID})
}

// ListFeedback handles GET /feedback, newest first, shown on the home page.
func (h *Handler) ListFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := h.db.Order("created_at desc").Limit(12).Find(&feedback).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}
