package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	StaticDir       string
	TeachersFile    string
	Environment     string
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8000"),
		StaticDir:    getenv("STATIC_DIR", "static"),
		TeachersFile: getenv("TEACHERS_FILE", "teachers.json"),
		Environment:  getenv("ENV", "development"),
	}

	timeout := getenv("SHUTDOWN_TIMEOUT", "5s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = d

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
