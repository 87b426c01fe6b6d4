package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/services"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

type paymentIntentInput struct {
	CampFees *float64 `json:"campFees" binding:"required"`
}

// CreatePaymentIntent handles POST /create-payment-intent. The fee is
// validated and converted to minor units before the gateway is called.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var input paymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campFees must be a number"})
		return
	}

	clientSecret, err := h.charge.ChargeAmount(c.Request.Context(), *input.CampFees)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment handles POST /payments, inserting the payment record and
// flipping the registration to paid.
func (h *Handler) RecordPayment(c *gin.Context) {
	var input services.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ParticipantEmail = requesterEmail(c)

	payment, err := h.reconciler.RecordPayment(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": payment.ID, "payment": payment})
}

// ListMyPayments handles GET /payments/:email with search and pagination.
// Participants see only their own history; organizers may inspect any.
func (h *Handler) ListMyPayments(c *gin.Context) {
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

	query := h.db.Model(&models.Payment{}).Where("participant_email = ?", email)

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(camp_name) LIKE LOWER(?)", utils.SanitizeSearchQuery(search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		handleError(c, err)
		return
	}

	var payments []models.Payment
	if err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    total,
		"page":     page,
		"limit":    limit,
	})
}

// ListAllPayments handles GET /payments (organizer only), newest first.
func (h *Handler) ListAllPayments(c *gin.Context) {
	var payments []models.Payment
	if err := h.db.Order("created_at desc").Find(&payments).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
