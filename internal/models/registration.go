package models

import "time"

type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
)

// ValidConfirmationStatus reports whether s belongs to the closed status set.
// Anything else is rejected at the boundary.
func ValidConfirmationStatus(s ConfirmationStatus) bool {
	return s == ConfirmationPending || s == ConfirmationConfirmed
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Registration records one participant-camp join. It is the authority for
// both confirmation and payment status; the copies on Payment are
// denormalized views.
type Registration struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	CampID string `gorm:"index" json:"campId"`

	ParticipantEmail string `gorm:"index" json:"participantEmail"`
	ParticipantName  string `json:"participantName"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`

	// Camp fields captured at registration time.
	CampName               string  `json:"campName"`
	CampFees               float64 `json:"campFees"`
	Location               string  `json:"location"`
	HealthcareProfessional string  `json:"healthcareProfessional"`

	ConfirmationStatus ConfirmationStatus `gorm:"type:text;default:'pending'" json:"confirmationStatus"`
	PaymentStatus      PaymentStatus      `gorm:"type:text;default:'unpaid'" json:"paymentStatus"`

	Camp Camp `gorm:"foreignKey:CampID;constraint:OnDelete:CASCADE" json:"camp,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Payment is immutable once created, except for the mirrored confirmation
// status which is refreshed when the registration's status changes.
type Payment struct {
	ID string `gorm:"primaryKey;type:text" json:"id"`

	// Unique so recording a payment twice for one registration is rejected.
	RegistrationID string `gorm:"uniqueIndex" json:"registrationId"`

	ParticipantEmail string  `gorm:"index" json:"participantEmail"`
	CampID           string  `gorm:"index" json:"campId"`
	CampName         string  `json:"campName"`
	Amount           float64 `json:"amount"`

	ConfirmationStatus ConfirmationStatus `gorm:"type:text;default:'pending'" json:"confirmationStatus"`

	// Gateway payment reference (PaymentIntent ID).
	TransactionID string `json:"transactionId"`

	CreatedAt time.Time `json:"createdAt"`
}
