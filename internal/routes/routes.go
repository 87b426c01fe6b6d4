package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/handlers"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/middleware"
)

// Register wires every route group onto the router. The auth and organizer
// middlewares are built once here and shared.
func Register(r gin.IRouter, h *handlers.Handler, cfg *config.Config, db *gorm.DB, cache *database.Cache) {
	auth := middleware.Auth(cfg.JWTSecret, cache)
	organizer := middleware.OrganizerOnly(db)

	RegisterAuthRoutes(r, h, auth)
	RegisterUserRoutes(r, h, auth)
	RegisterCampRoutes(r, h, auth, organizer)
	RegisterRegistrationRoutes(r, h, auth, organizer)
	RegisterPaymentRoutes(r, h, auth, organizer)
	RegisterFeedbackRoutes(r, h, auth)
}

func RegisterAuthRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.POST("/jwt", middleware.AuthRateLimit(), h.IssueToken)
	r.POST("/logout", auth, h.Logout)
}

func RegisterUserRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.POST("/users", h.UpsertUser)
	r.GET("/users/organizer/:email", auth, h.IsOrganizer)
	r.GET("/users/:email", auth, h.GetUser)
	r.PUT("/users/:email", auth, h.UpdateProfile)
}

func RegisterCampRoutes(r gin.IRouter, h *handlers.Handler, auth, organizer gin.HandlerFunc) {
	// Public catalog
	r.GET("/all-camps", h.ListCamps)
	r.GET("/camp/:id", h.GetCamp)
	r.GET("/popular-camps", h.PopularCamps)

	// Organizer management
	r.POST("/add-camp", auth, organizer, h.AddCamp)
	r.PUT("/update-camp/:id", auth, organizer, h.UpdateCamp)
	r.DELETE("/delete-camp/:id", auth, organizer, h.DeleteCamp)
	r.GET("/camps/organizer/:email", auth, organizer, h.OrganizerCamps)
}

func RegisterRegistrationRoutes(r gin.IRouter, h *handlers.Handler, auth, organizer gin.HandlerFunc) {
	r.POST("/registered-camps", auth, h.CreateRegistration)
	r.GET("/registered-camps/:email", auth, h.ListRegistrations)
	r.PATCH("/registered-camps/:email", auth, organizer, h.SetConfirmationStatus)
	r.DELETE("/registered-camps/:id", auth, h.CancelRegistration)

	r.GET("/analytics/:email", auth, h.ParticipantAnalytics)
}

func RegisterPaymentRoutes(r gin.IRouter, h *handlers.Handler, auth, organizer gin.HandlerFunc) {
	r.POST("/create-payment-intent", auth, h.CreatePaymentIntent)
	r.POST("/payments", auth, h.RecordPayment)
	r.GET("/payments/:email", auth, h.ListMyPayments)
	r.GET("/payments", auth, organizer, h.ListAllPayments)
}

func RegisterFeedbackRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.POST("/feedback", auth, h.CreateFeedback)
	r.GET("/feedback", h.ListFeedback)
}
