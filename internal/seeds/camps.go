package seeds

import (
	"time"

	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

// SeedCamps inserts a set of demo camps owned by the given organizer.
// Camps are keyed by name, so re-running the seeder is safe.
func SeedCamps(db *gorm.DB, organizer models.User) {
	logger.Info().Msg("Seeding demo camps...")

	camps := []models.Camp{
		{
			CampName:               "Free Eye Checkup Camp",
			Image:                  "https://images.unsplash.com/photo-1551601651-2a8555f1a136",
			CampFees:               0,
			DateTime:               time.Now().Add(7 * 24 * time.Hour),
			Location:               "Dhaka Community Center",
			HealthcareProfessional: "Dr. Farhana Rahman",
			Description:            "Comprehensive eye examinations with free prescription glasses for low-income families.",
		},
		{
			CampName:               "Diabetes Screening Camp",
			Image:                  "https://images.unsplash.com/photo-1579684385127-1ef15d508118",
			CampFees:               25,
			DateTime:               time.Now().Add(14 * 24 * time.Hour),
			Location:               "Chittagong Medical Hall",
			HealthcareProfessional: "Dr. Kamal Hossain",
			Description:            "Blood glucose testing, HbA1c screening, and a dietary consultation.",
		},
		{
			CampName:               "Cardiac Health Camp",
			Image:                  "https://images.unsplash.com/photo-1628348068343-c6a848d2b6dd",
			CampFees:               50,
			DateTime:               time.Now().Add(21 * 24 * time.Hour),
			Location:               "Sylhet General Hospital",
			HealthcareProfessional: "Dr. Nusrat Jahan",
			Description:            "ECG, blood pressure monitoring, and cardiologist consultation.",
		},
		{
			CampName:               "Dental Care Camp",
			Image:                  "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5",
			CampFees:               15,
			DateTime:               time.Now().Add(10 * 24 * time.Hour),
			Location:               "Rajshahi Health Complex",
			HealthcareProfessional: "Dr. Imran Chowdhury",
			Description:            "Dental checkups, cleaning, and oral hygiene education for all ages.",
		},
	}

	for _, camp := range camps {
		var existing models.Camp
		if err := db.First(&existing, "camp_name = ?", camp.CampName).Error; err == nil {
			continue
		}

		camp.ID = utils.GenerateID()
		camp.OrganizerEmail = organizer.Email
		if err := db.Create(&camp).Error; err != nil {
			logger.Error().Err(err).Str("camp", camp.CampName).Msg("Failed to seed camp")
			continue
		}
		logger.Info().Str("camp", camp.CampName).Msg("Seeded camp")
	}
}
