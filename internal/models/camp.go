package models

import "time"

type Camp struct {
	ID                     string    `gorm:"primaryKey;type:text" json:"id"`
	CampName               string    `gorm:"index" json:"campName"`
	Image                  string    `json:"image"`
	CampFees               float64   `json:"campFees"`
	DateTime               time.Time `json:"dateTime"`
	Location               string    `json:"location"`
	HealthcareProfessional string    `json:"healthcareProfessional"`
	Description            string    `gorm:"type:text" json:"description"`

	// Count of active (non-cancelled) registrations referencing this camp.
	// Maintained transactionally by the reconciliation service, never
	// recomputed lazily.
	ParticipantCount int `gorm:"default:0" json:"participantCount"`

	OrganizerEmail string `gorm:"index" json:"organizerEmail"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
