package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Database (embedded, file-resident)
	DBPath string

	// JWT
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// External book search
	BooksAPIURL     string
	BooksAPITimeout time.Duration
	BooksMaxResults int
	BooksLang       string

	// Seeded administrator account
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DBPath: getEnv("DB_PATH", "bookhaven.db"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "24h")),

		BooksAPIURL:     getEnv("BOOKS_API_URL", "https://www.googleapis.com/books/v1/volumes"),
		BooksAPITimeout: parseDuration(getEnv("BOOKS_API_TIMEOUT", "10s")),
		BooksMaxResults: parseInt(getEnv("BOOKS_MAX_RESULTS", "12"), 12),
		BooksLang:       getEnv("BOOKS_LANG", "es"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@bookhaven.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Administrador"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
