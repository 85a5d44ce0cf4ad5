package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by ConnectDatabase.
var DB *gorm.DB

func ConnectDatabase() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "risiko"),
		getEnv("DB_PASSWORD", "risiko"),
		getEnv("DB_NAME", "risiko_ladder"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	DB = db
	log.Println("Database connection established")
}

// AdminKey returns the shared secret expected in the X-Admin-Key header for
// administrative endpoints.
func AdminKey() string {
	return getEnv("ADMIN_KEY", "supersecret")
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
