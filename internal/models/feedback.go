package models

import "time"

// Feedback is a participant rating for a camp they attended. Only
// participants with a paid, confirmed registration may post one.
type Feedback struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	CampID string `gorm:"index" json:"campId"`

	ParticipantEmail string `json:"participantEmail"`
	ParticipantName  string `json:"participantName"`
	ParticipantPhoto string `json:"participantPhoto"`

	Rating  int    `json:"rating"` // 1-5
	Comment string `gorm:"type:text" json:"comment"`

	CampName string `json:"campName"`

	CreatedAt time.Time `json:"createdAt"`
}
