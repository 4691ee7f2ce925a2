package config

import (
	"errors"
	"log"
	"os"
	"strconv"
)

// Environment names. Production tightens cookie security and refuses to run
// with the built-in development signing secret.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// devJWTSecret is only ever used in development, and loudly. It must never
// reach a deployed environment; Load enforces that.
const devJWTSecret = "dev_secret_cyber_corner"

// StorageDriver selects where uploaded documents are persisted.
const (
	StorageDisk  = "disk"
	StorageMinIO = "minio"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings, used when STORAGE_DRIVER=minio.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application,
// populated from environment variables (a .env file is auto-loaded when the
// binary imports godotenv/autoload).
type AppConfig struct {
	Env           string
	Port          string
	JWTSecret     string
	UploadDir     string
	StorageDriver string
	SeedDemoData  bool
	Database      DatabaseConfig
	MinIO         MinIOConfig
}

// Production reports whether the app runs with production hardening.
func (c *AppConfig) Production() bool {
	return c.Env == EnvProduction
}

// Load reads configuration from environment variables.
//
// It fails when APP_ENV=production and no JWT_SECRET is set; in development
// a missing secret falls back to an insecure built-in value with a warning.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:           getEnv("APP_ENV", EnvDevelopment),
		Port:          getEnv("PORT", "5000"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageDisk),
		SeedDemoData:  getEnvBool("SEED_DEMO_DATA", false),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", "cybercorner"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "uploads"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.Production() {
			return nil, ErrMissingJWTSecret
		}
		log.Println("WARNING: JWT_SECRET not set, using insecure development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
