package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/services"
	apperrors "github.com/AnsarulIslam10/MediCamp-Server/pkg/errors"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
)

// Handler carries the store handles and services every endpoint needs.
// They are injected once at startup; no handler reaches for globals.
type Handler struct {
	cfg        *config.Config
	db         *gorm.DB
	cache      *database.Cache
	reconciler *services.Reconciler
	charge     *services.ChargeService
}

func New(cfg *config.Config, db *gorm.DB, cache *database.Cache, reconciler *services.Reconciler, charge *services.ChargeService) *Handler {
	return &Handler{
		cfg:        cfg,
		db:         db,
		cache:      cache,
		reconciler: reconciler,
		charge:     charge,
	}
}

// handleError maps service errors to HTTP responses. Anything that is not
// an AppError is logged and reported as a generic 500.
func handleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// requesterEmail returns the authenticated email set by the auth middleware.
func requesterEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		return v.(string)
	}
	return ""
}

// isOrganizer reports whether the authenticated user holds the organizer role.
func (h *Handler) isOrganizer(c *gin.Context) bool {
	var count int64
	h.db.Table("users").
		Where("email = ? AND role = ?", requesterEmail(c), "organizer").
		Count(&count)
	return count > 0
}
