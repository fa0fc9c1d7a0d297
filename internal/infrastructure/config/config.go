package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Postgres  PostgresConfig  `json:"postgres"`
	DynamoDB  DynamoDBConfig  `json:"dynamodb"`
	MinIO     MinIOConfig     `json:"minio"`
	Auth      AuthConfig      `json:"auth"`
	Rendering RenderingConfig `json:"rendering"`
	Logging   LoggingConfig   `json:"logging"`
	Sweeper   SweeperConfig   `json:"sweeper"`
}

type ServerConfig struct {
	Port            string        `json:"port"`
	Environment     string        `json:"environment"`
	GinMode         string        `json:"gin_mode"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type DynamoDBConfig struct {
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"-"`
	SecretAccessKey string `json:"-"`
	DocumentsTable  string `json:"documents_table"`
}

// MinIOConfig is optional: with Enabled false generated files are not kept.
type MinIOConfig struct {
	Enabled   bool   `json:"enabled"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"-"`
	SecretKey string `json:"-"`
	Bucket    string `json:"bucket"`
	UseSSL    bool   `json:"use_ssl"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

type RenderingConfig struct {
	FontDir          string        `json:"font_dir"`
	Timezone         string        `json:"timezone"`
	BaseImageTimeout time.Duration `json:"base_image_timeout"`
}

type LoggingConfig struct {
	Level       string `json:"level"`
	Format      string `json:"format"`
	ServiceName string `json:"service_name"`
}

// SweeperConfig drives the job that fails documents stuck in processing.
type SweeperConfig struct {
	Interval         time.Duration `json:"interval"`
	MaxProcessingAge time.Duration `json:"max_processing_age"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Location resolves the timezone used for the "today" certificate field.
func (r *RenderingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(r.Timezone)
}

func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// Load reads the environment. .env files are loaded by godotenv/autoload in main.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "reborn"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			DocumentsTable:  getEnv("DOCUMENTS_TABLE", "documents"),
		},
		MinIO: MinIOConfig{
			Enabled:   getEnvBool("MINIO_ENABLED", false),
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "reborn-documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", ""),
		},
		Rendering: RenderingConfig{
			FontDir:          getEnv("FONT_DIR", ""),
			Timezone:         getEnv("CERTIFICATE_TIMEZONE", "America/Sao_Paulo"),
			BaseImageTimeout: getEnvDuration("BASE_IMAGE_TIMEOUT", 5*time.Second),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      getEnv("LOG_FORMAT", "json"),
			ServiceName: getEnv("SERVICE_NAME", "reborn-api"),
		},
		Sweeper: SweeperConfig{
			Interval:         getEnvDuration("SWEEPER_INTERVAL", 5*time.Minute),
			MaxProcessingAge: getEnvDuration("SWEEPER_MAX_PROCESSING_AGE", 15*time.Minute),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := cfg.Rendering.Location(); err != nil {
		return nil, fmt.Errorf("invalid CERTIFICATE_TIMEZONE %q: %w", cfg.Rendering.Timezone, err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration ignores unparsable and non-positive values.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
