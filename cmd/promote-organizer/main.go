package main

import (
	"flag"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
)

// Promotes an existing user to the organizer role by email.
func main() {
	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Env)

	if *email == "" {
		logger.Fatal().Msg("Usage: promote-organizer -email user@example.com")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	res := db.Model(&models.User{}).
		Where("email = ?", *email).
		Update("role", models.RoleOrganizer)
	if res.Error != nil {
		logger.Fatal().Err(res.Error).Msg("Failed to update role")
	}
	if res.RowsAffected == 0 {
		logger.Fatal().Str("email", *email).Msg("No user with that email")
	}

	logger.Info().Str("email", *email).Msg("Promoted to organizer")
}
