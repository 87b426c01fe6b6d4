package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/services"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

type stubGateway struct {
	lastAmount int64
	secret     string
	err        error
}

func (s *stubGateway) CreatePaymentIntent(_ context.Context, amountMinor int64) (string, error) {
	s.lastAmount = amountMinor
	return s.secret, s.err
}

type testEnv struct {
	db      *gorm.DB
	handler *Handler
	gateway *stubGateway
}

// newTestEnv builds a Handler over a fresh in-memory SQLite database and a
// stubbed payment gateway.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.Init("test")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Camp{},
		&models.Registration{},
		&models.Payment{},
		&models.Feedback{},
	))

	cfg := &config.Config{JWTSecret: "test-secret", Env: "test"}
	cache := &database.Cache{} // no Redis in tests; all cache ops degrade to no-ops
	gateway := &stubGateway{secret: "pi_test_secret"}

	h := New(cfg, db, cache, services.NewReconciler(db), services.NewChargeService(gateway))
	return &testEnv{db: db, handler: h, gateway: gateway}
}

// fakeAuth stands in for the JWT middleware, pinning the requester identity.
func fakeAuth(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email", email)
		c.Next()
	}
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func (e *testEnv) createCamp(t *testing.T, name string, fees float64) models.Camp {
	t.Helper()
	camp := models.Camp{
		ID:             utils.GenerateID(),
		CampName:       name,
		CampFees:       fees,
		DateTime:       time.Now().Add(24 * time.Hour),
		Location:       "Dhaka",
		OrganizerEmail: "organizer@medicamp.com",
	}
	require.NoError(t, e.db.Create(&camp).Error)
	return camp
}

func (e *testEnv) createUser(t *testing.T, email string, role models.UserRole) models.User {
	t.Helper()
	user := models.User{
		ID:    utils.GenerateID(),
		Name:  "Test User",
		Email: email,
		Role:  role,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}
