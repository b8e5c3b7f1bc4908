package config

import (
	"os"
	"strconv"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string
	Port    string
	Workers int
	Debug   bool
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	Schema             string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds S3-compatible object storage settings used for asset
// documents, QR code images and exported reports.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	SecretKey     string
	TokenTTLHours int
	BcryptCost    int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Auth     AuthConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
//
// Variable names follow the deployment contract of the assetz image:
// DB_USER_NAME, DB_NAME, DB_PASSWORD, DB_HOST, DB_PORT, DB_SCHEMA, SECRET_KEY_ENV,
// DEBUG, AWS_S3_BUCKET_STATIC_FILES_BUCKET_KEY, AWS_S3_SECRET_KEY_ID_STATIC_FILES,
// AWS_S3_BUCKET_URL, AWS_S3_BUCKET_NAME. Missing values default to empty and fail
// at first use rather than at load.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:    getEnv("HOST", "0.0.0.0"),
			Port:    getEnv("PORT", "8000"),
			Workers: getEnvInt("WORKERS", 3),
			Debug:   getEnvBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER_NAME", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			Schema:             getEnv("DB_SCHEMA", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("AWS_S3_BUCKET_URL", ""),
			AccessKey: getEnv("AWS_S3_BUCKET_STATIC_FILES_BUCKET_KEY", ""),
			SecretKey: getEnv("AWS_S3_SECRET_KEY_ID_STATIC_FILES", ""),
			Bucket:    getEnv("AWS_S3_BUCKET_NAME", ""),
			UseSSL:    getEnvBool("AWS_S3_USE_SSL", true),
		},
		Auth: AuthConfig{
			SecretKey:     getEnv("SECRET_KEY_ENV", ""),
			TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 12),
			BcryptCost:    getEnvInt("BCRYPT_COST", 0), // 0 falls back to bcrypt.DefaultCost
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
