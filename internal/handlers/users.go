package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

type upsertUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// UpsertUser handles POST /users. Inserts the user if the email is new,
// otherwise reports the existing record.
func (h *Handler) UpsertUser(c *gin.Context) {
	var input upsertUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	err := h.db.First(&existing, "email = ?", input.Email).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		handleError(c, err)
		return
	}

	user := models.User{
		ID:        utils.GenerateID(),
		Name:      input.Name,
		Email:     input.Email,
		PhotoURL:  input.PhotoURL,
		Role:      models.RoleParticipant,
		CreatedAt: time.Now(),
	}
	if err := h.db.Create(&user).Error; err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID})
}

// GetUser handles GET /users/:email, returning the stored profile.
func (h *Handler) GetUser(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	if err := h.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// IsOrganizer handles GET /users/organizer/:email. The dashboard uses it to
// decide which views to show.
func (h *Handler) IsOrganizer(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	err := h.db.First(&user, "email = ?", email).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizer": err == nil && user.Role == models.RoleOrganizer})
}

type updateProfileInput struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UpdateProfile handles PUT /users/:email. Users may only update their own
// profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.Param("email")
	if email != requesterEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update another user's profile"})
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"name": input.Name, "photo_url": input.PhotoURL})
	if res.Error != nil {
		handleError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
