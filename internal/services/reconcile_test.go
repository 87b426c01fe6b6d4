package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	apperrors "github.com/AnsarulIslam10/MediCamp-Server/pkg/errors"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

// newTestDB opens a fresh in-memory SQLite database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init("test")

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
	return db
}

func createCamp(t *testing.T, db *gorm.DB, name string, fees float64) models.Camp {
	t.Helper()
	camp := models.Camp{
		ID:             utils.GenerateID(),
		CampName:       name,
		CampFees:       fees,
		DateTime:       time.Now().Add(24 * time.Hour),
		Location:       "Dhaka",
		OrganizerEmail: "organizer@medicamp.com",
	}
	require.NoError(t, db.Create(&camp).Error)
	return camp
}

func campCounter(t *testing.T, db *gorm.DB, campID string) int {
	t.Helper()
	var camp models.Camp
	require.NoError(t, db.First(&camp, "id = ?", campID).Error)
	return camp.ParticipantCount
}

func TestRegisterCreatesRegistrationAndIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)

	reg, err := r.Register(context.Background(), RegisterInput{
		CampID:           camp.ID,
		ParticipantEmail: "p1@x.com",
		ParticipantName:  "P One",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentUnpaid, reg.PaymentStatus)
	assert.Equal(t, models.ConfirmationPending, reg.ConfirmationStatus)
	assert.Equal(t, camp.CampName, reg.CampName)
	assert.Equal(t, camp.CampFees, reg.CampFees)

	assert.Equal(t, 1, campCounter(t, db, camp.ID))

	var count int64
	db.Model(&models.Registration{}).Where("camp_id = ?", camp.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterUnknownCampIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)

	_, err := r.Register(context.Background(), RegisterInput{
		CampID:           "missing",
		ParticipantEmail: "p1@x.com",
		ParticipantName:  "P One",
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	// Nothing was written
	var count int64
	db.Model(&models.Registration{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCancelDeletesRegistrationAndDecrementsCounter(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)

	reg, err := r.Register(context.Background(), RegisterInput{
		CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P One",
	})
	require.NoError(t, err)
	require.Equal(t, 1, campCounter(t, db, camp.ID))

	require.NoError(t, r.Cancel(context.Background(), reg.ID))

	// Round-trip law: counter back to its pre-register value.
	assert.Equal(t, 0, campCounter(t, db, camp.ID))

	var count int64
	db.Model(&models.Registration{}).Where("id = ?", reg.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCancelUnknownRegistrationIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)

	err := r.Cancel(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCancelClampsCounterAtZero(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)

	reg, err := r.Register(context.Background(), RegisterInput{
		CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P One",
	})
	require.NoError(t, err)

	// Simulate drift: counter already at zero despite a live registration.
	require.NoError(t, db.Model(&models.Camp{}).
		Where("id = ?", camp.ID).
		UpdateColumn("participant_count", 0).Error)

	require.NoError(t, r.Cancel(context.Background(), reg.ID))
	assert.Equal(t, 0, campCounter(t, db, camp.ID), "counter must never go negative")
}

func TestMultipleRegistrationsScenario(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "C1", 50)
	ctx := context.Background()

	reg1, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)
	assert.Equal(t, 1, campCounter(t, db, camp.ID))

	_, err = r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p2@x.com", ParticipantName: "P2"})
	require.NoError(t, err)
	assert.Equal(t, 2, campCounter(t, db, camp.ID))

	require.NoError(t, r.Cancel(ctx, reg1.ID))
	assert.Equal(t, 1, campCounter(t, db, camp.ID))

	rows, err := r.ParticipantAnalytics(ctx, "p1@x.com")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSetConfirmationStatusPropagatesToPayment(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	reg, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)
	_, err = r.RecordPayment(ctx, PaymentInput{RegistrationID: reg.ID, Amount: 50})
	require.NoError(t, err)

	require.NoError(t, r.SetConfirmationStatus(ctx, "p1@x.com", camp.ID, models.ConfirmationConfirmed))

	var got models.Registration
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	assert.Equal(t, models.ConfirmationConfirmed, got.ConfirmationStatus)

	var payment models.Payment
	require.NoError(t, db.First(&payment, "registration_id = ?", reg.ID).Error)
	assert.Equal(t, models.ConfirmationConfirmed, payment.ConfirmationStatus)
}

func TestSetConfirmationStatusIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	reg, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	require.NoError(t, r.SetConfirmationStatus(ctx, "p1@x.com", camp.ID, models.ConfirmationConfirmed))
	require.NoError(t, r.SetConfirmationStatus(ctx, "p1@x.com", camp.ID, models.ConfirmationConfirmed))

	var got models.Registration
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	assert.Equal(t, models.ConfirmationConfirmed, got.ConfirmationStatus)
}

func TestSetConfirmationStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	reg, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	err = r.SetConfirmationStatus(ctx, "p1@x.com", camp.ID, "definitely-not-a-status")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	var got models.Registration
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	assert.Equal(t, models.ConfirmationPending, got.ConfirmationStatus, "rejected status must not change anything")
}

func TestSetConfirmationStatusUnknownRegistrationIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)

	err := r.SetConfirmationStatus(context.Background(), "nobody@x.com", "no-camp", models.ConfirmationConfirmed)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestRecordPaymentFlipsRegistrationToPaid(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	reg, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	payment, err := r.RecordPayment(ctx, PaymentInput{
		RegistrationID: reg.ID,
		Amount:         50,
		TransactionID:  "pi_123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.CampID, payment.CampID)
	assert.Equal(t, "p1@x.com", payment.ParticipantEmail)

	var got models.Registration
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
}

func TestRecordPaymentIsIdempotentPerRegistration(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	reg, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	_, err = r.RecordPayment(ctx, PaymentInput{RegistrationID: reg.ID, Amount: 50})
	require.NoError(t, err)

	_, err = r.RecordPayment(ctx, PaymentInput{RegistrationID: reg.ID, Amount: 50})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)

	var count int64
	db.Model(&models.Payment{}).Where("registration_id = ?", reg.ID).Count(&count)
	assert.EqualValues(t, 1, count, "duplicate call must not create a second payment row")
}

func TestRecordPaymentUnknownRegistrationIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)

	_, err := r.RecordPayment(context.Background(), PaymentInput{RegistrationID: "missing", Amount: 50})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestAnalyticsUnpaidRegistrationDefaults(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	camp := createCamp(t, db, "Eye Camp", 50)
	ctx := context.Background()

	_, err := r.Register(ctx, RegisterInput{CampID: camp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	rows, err := r.ParticipantAnalytics(ctx, "p1@x.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.PaymentUnpaid, rows[0].PaymentStatus)
	assert.Equal(t, float64(0), rows[0].AmountPaid)
	assert.Equal(t, float64(50), rows[0].CampFees)
	assert.Equal(t, "Eye Camp", rows[0].CampName)
}

func TestAnalyticsJoinsPaymentByCamp(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)
	ctx := context.Background()

	paidCamp := createCamp(t, db, "Paid Camp", 50)
	unpaidCamp := createCamp(t, db, "Unpaid Camp", 30)

	reg1, err := r.Register(ctx, RegisterInput{CampID: paidCamp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)
	_, err = r.Register(ctx, RegisterInput{CampID: unpaidCamp.ID, ParticipantEmail: "p1@x.com", ParticipantName: "P1"})
	require.NoError(t, err)

	// Registrations can land on the same timestamp; spread them out so the
	// creation-order assertion below is meaningful.
	require.NoError(t, db.Model(&models.Registration{}).
		Where("id = ?", reg1.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Minute)).Error)

	_, err = r.RecordPayment(ctx, PaymentInput{RegistrationID: reg1.ID, Amount: 50})
	require.NoError(t, err)

	rows, err := r.ParticipantAnalytics(ctx, "p1@x.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Registration creation order is preserved.
	assert.Equal(t, "Paid Camp", rows[0].CampName)
	assert.Equal(t, models.PaymentPaid, rows[0].PaymentStatus)
	assert.Equal(t, float64(50), rows[0].AmountPaid)

	assert.Equal(t, "Unpaid Camp", rows[1].CampName)
	assert.Equal(t, models.PaymentUnpaid, rows[1].PaymentStatus)
	assert.Equal(t, float64(0), rows[1].AmountPaid)
}

func TestAnalyticsEmptyForUnknownParticipant(t *testing.T) {
	db := newTestDB(t)
	r := NewReconciler(db)

	rows, err := r.ParticipantAnalytics(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
