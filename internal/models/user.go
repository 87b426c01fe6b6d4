package models

import "time"

type UserRole string

const (
	RoleParticipant UserRole = "participant"
	RoleOrganizer   UserRole = "organizer"
)

type User struct {
	ID       string   `gorm:"primaryKey;type:text" json:"id"`
	Name     string   `json:"name"`
	Email    string   `gorm:"uniqueIndex" json:"email"`
	PhotoURL string   `json:"photoURL"`
	Role     UserRole `gorm:"type:text;default:'participant'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}
