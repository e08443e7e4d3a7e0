package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	LogMode       string
	Seed          bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogMode:       os.Getenv("LOG_MODE"),
		Seed:          os.Getenv("SEED") != "false",
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "firmlynk-dev-secret"
	}

	// empty DB_DSN means the in-memory sqlite store, rebuilt on every start
	return cfg
}
