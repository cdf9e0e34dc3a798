package config

import (
	"os"

	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// JWTSecret returns the key used to sign and verify session tokens.
func JWTSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("farmguard-dev-secret")
}

// GeminiAPIKey returns the key for the diagnosis service.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GeminiModel returns the multimodal model used for plant diagnosis.
func GeminiModel() string {
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		return m
	}
	return "gemini-3-flash-preview"
}
