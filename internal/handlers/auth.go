package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

type tokenInput struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken handles POST /jwt. The SPA exchanges the signed-in user's email
// for a 7-day bearer token.
func (h *Handler) IssueToken(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, input.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout handles POST /logout. The token's JTI goes on the Redis blacklist
// until the token would have expired anyway.
func (h *Handler) Logout(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	claims := v.(*utils.Claims)

	ttl := 7 * 24 * time.Hour
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	if err := h.cache.BlacklistToken(c.Request.Context(), claims.GetJTI(), ttl); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
