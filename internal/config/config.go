package config

import (
	"os"
)

type Config struct {
	Port         string
	DBPath       string
	LogLevel     string
	DefaultOwner string
}

func New() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DBPATH", "solvix.db"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		DefaultOwner: os.Getenv("DEFAULTOWNER"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
