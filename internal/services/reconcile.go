package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	apperrors "github.com/AnsarulIslam10/MediCamp-Server/pkg/errors"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

// Reconciler coordinates writes across camps, registrations and payments so
// that the camp participant counter, registration status and payment records
// stay mutually consistent. Every multi-row operation runs inside a single
// database transaction.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// RegisterInput carries the participant details for a join-camp request.
type RegisterInput struct {
	CampID           string `json:"campId" binding:"required"`
	ParticipantEmail string `json:"-"`
	ParticipantName  string `json:"participantName" binding:"required"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`
}

// Register creates a registration for the camp and increments the camp's
// participant counter. Both writes commit or roll back together.
func (r *Reconciler) Register(ctx context.Context, in RegisterInput) (*models.Registration, error) {
	var reg *models.Registration

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camp models.Camp
		if err := tx.First(&camp, "id = ?", in.CampID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Camp not found")
			}
			return err
		}

		reg = &models.Registration{
			ID:                     utils.GenerateID(),
			CampID:                 camp.ID,
			ParticipantEmail:       in.ParticipantEmail,
			ParticipantName:        in.ParticipantName,
			Age:                    in.Age,
			Phone:                  in.Phone,
			Gender:                 in.Gender,
			EmergencyContact:       in.EmergencyContact,
			CampName:               camp.CampName,
			CampFees:               camp.CampFees,
			Location:               camp.Location,
			HealthcareProfessional: camp.HealthcareProfessional,
			ConfirmationStatus:     models.ConfirmationPending,
			PaymentStatus:          models.PaymentUnpaid,
			CreatedAt:              time.Now(),
		}
		if err := tx.Create(reg).Error; err != nil {
			return err
		}

		return tx.Model(&models.Camp{}).
			Where("id = ?", camp.ID).
			UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Cancel deletes a registration and decrements the owning camp's counter.
// The counter is clamped at zero; an already-zero counter is logged as
// drift instead of being driven negative.
func (r *Reconciler) Cancel(ctx context.Context, registrationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, "id = ?", registrationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Registration not found")
			}
			return err
		}

		if err := tx.Delete(&models.Registration{}, "id = ?", reg.ID).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Camp{}).
			Where("id = ? AND participant_count > 0", reg.CampID).
			UpdateColumn("participant_count", gorm.Expr("participant_count - ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			logger.Warn().
				Str("campId", reg.CampID).
				Str("registrationId", reg.ID).
				Msg("Participant counter already at zero on cancel; skipping decrement")
		}
		return nil
	})
}

// SetConfirmationStatus updates the confirmation status on the matching
// registration, then propagates it to any payment sharing the same
// participant+camp key. The registration is authoritative; the payment-side
// refresh is best effort and a failure there is logged, not surfaced.
func (r *Reconciler) SetConfirmationStatus(ctx context.Context, participantEmail, campID string, status models.ConfirmationStatus) error {
	if !models.ValidConfirmationStatus(status) {
		return apperrors.BadRequest("Unknown confirmation status: " + string(status))
	}

	res := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("participant_email = ? AND camp_id = ?", participantEmail, campID).
		Update("confirmation_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Registration not found")
	}

	if err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("participant_email = ? AND camp_id = ?", participantEmail, campID).
		Update("confirmation_status", status).Error; err != nil {
		logger.Warn().Err(err).
			Str("participantEmail", participantEmail).
			Str("campId", campID).
			Msg("Failed to refresh confirmation status on payment record")
	}
	return nil
}

// PaymentInput carries a completed charge to be recorded.
type PaymentInput struct {
	RegistrationID   string  `json:"registrationId" binding:"required"`
	ParticipantEmail string  `json:"-"`
	Amount           float64 `json:"amount"`
	TransactionID    string  `json:"transactionId"`
}

// RecordPayment inserts a payment row and flips the registration's payment
// status to paid, atomically. The unique index on RegistrationID makes a
// second call for the same registration fail with a conflict instead of
// creating a duplicate row.
func (r *Reconciler) RecordPayment(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	var payment *models.Payment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, "id = ?", in.RegistrationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Registration not found")
			}
			return err
		}

		payment = &models.Payment{
			ID:                 utils.GenerateID(),
			RegistrationID:     reg.ID,
			ParticipantEmail:   reg.ParticipantEmail,
			CampID:             reg.CampID,
			CampName:           reg.CampName,
			Amount:             in.Amount,
			ConfirmationStatus: reg.ConfirmationStatus,
			TransactionID:      in.TransactionID,
			CreatedAt:          time.Now(),
		}
		if err := tx.Create(payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Payment already recorded for this registration")
			}
			return err
		}

		return tx.Model(&models.Registration{}).
			Where("id = ?", reg.ID).
			Update("payment_status", models.PaymentPaid).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// AnalyticsRow is one joined registration/payment entry for a participant.
type AnalyticsRow struct {
	CampName           string                    `json:"campName"`
	CampFees           float64                   `json:"campFees"`
	PaymentStatus      models.PaymentStatus      `json:"paymentStatus"`
	AmountPaid         float64                   `json:"amountPaid"`
	ConfirmationStatus models.ConfirmationStatus `json:"confirmationStatus"`
}

// ParticipantAnalytics left-joins a participant's registrations with their
// payments, keyed by camp. A registration without a payment reports unpaid
// with zero amount. Rows follow registration creation order (oldest first,
// ID as tiebreaker) so the output is deterministic. Read-only.
func (r *Reconciler) ParticipantAnalytics(ctx context.Context, participantEmail string) ([]AnalyticsRow, error) {
	var regs []models.Registration
	if err := r.db.WithContext(ctx).
		Where("participant_email = ?", participantEmail).
		Order("created_at asc, id asc").
		Find(&regs).Error; err != nil {
		return nil, err
	}

	if len(regs) == 0 {
		return []AnalyticsRow{}, nil
	}

	campIDs := make([]string, 0, len(regs))
	for _, reg := range regs {
		campIDs = append(campIDs, reg.CampID)
	}

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where("participant_email = ? AND camp_id IN ?", participantEmail, campIDs).
		Find(&payments).Error; err != nil {
		return nil, err
	}

	paymentByCamp := make(map[string]models.Payment, len(payments))
	for _, p := range payments {
		paymentByCamp[p.CampID] = p
	}

	rows := make([]AnalyticsRow, 0, len(regs))
	for _, reg := range regs {
		row := AnalyticsRow{
			CampName:           reg.CampName,
			CampFees:           reg.CampFees,
			PaymentStatus:      models.PaymentUnpaid,
			AmountPaid:         0,
			ConfirmationStatus: reg.ConfirmationStatus,
		}
		if p, ok := paymentByCamp[reg.CampID]; ok {
			row.PaymentStatus = models.PaymentPaid
			row.AmountPaid = p.Amount
		}
		rows = append(rows, row)
	}
	return rows, nil
}
