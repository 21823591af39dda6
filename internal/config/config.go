package config

import (
	"fmt"
	"os"
)

// Config contient toute la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string

	// PostgreSQL (sessions, device tokens, access logs)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis (documents de suivi par utilisateur)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Préfixe des clés de stockage ("<namespace>-<username>")
	StorageNamespace string
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "medtrack"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getEnv("DB_NAME", "medtrack"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          0,
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "med-diet-tracker-data"),
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("missing database configuration (DB_USER, DB_NAME)")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
