package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel       string
	SourceLanguage string
	ReservedColumn string
	OutputDir      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SourceLanguage: getEnv("SOURCE_LANGUAGE", ""),
		ReservedColumn: getEnv("RESERVED_COLUMN", "No"),
		OutputDir:      getEnv("OUTPUT_DIR", ""),
	}
}

// ParseLevel maps the configured level name to a zerolog level,
// falling back to info on unknown values.
func (c *Config) ParseLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
