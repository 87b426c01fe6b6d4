package main

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/seeds"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	logger.Info().Msg("Running migrations (just in case)...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Camp{},
		&models.Registration{},
		&models.Payment{},
		&models.Feedback{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}

	var organizer models.User
	err = db.First(&organizer, "role = ?", models.RoleOrganizer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn().Msg("No organizer found, creating a fallback one...")
		organizer = models.User{
			ID:        utils.GenerateID(),
			Name:      "MediCamp Organizer",
			Email:     "organizer@medicamp.com",
			Role:      models.RoleOrganizer,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&organizer).Error; err != nil {
			logger.Fatal().Err(err).Msg("Failed to create organizer")
		}
	} else if err != nil {
		logger.Fatal().Err(err).Msg("Failed to look up organizer")
	}

	seeds.SeedCamps(db, organizer)
	logger.Info().Msg("Seeding complete")
}
