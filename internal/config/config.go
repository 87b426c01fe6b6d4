package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Env         string `mapstructure:"GO_ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"ACCESS_TOKEN_SECRET"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
}

// Load reads configuration from .env (if present) and the environment.
// The returned Config is passed down explicitly; nothing reads it as a global.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	// AutomaticEnv alone does not populate Unmarshal; bind the keys we use.
	for _, key := range []string{
		"PORT", "GO_ENV", "DATABASE_URL", "ACCESS_TOKEN_SECRET", "FRONTEND_URL",
		"REDIS_ADDR", "REDIS_PASSWORD", "STRIPE_SECRET_KEY",
	} {
		viper.BindEnv(key)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	return cfg, nil
}
