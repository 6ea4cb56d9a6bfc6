package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Pipeline PipelineConfig
	OCR      OCRConfig
	Registry RegistryConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr   string
	StorageDir string
	// maximum documents accepted per upload batch
	MaxBatchSize int
}

// PipelineConfig holds orchestrator-related configuration
type PipelineConfig struct {
	Workers        int
	QueueSize      int
	StageTimeout   time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
	PairingWindow  time.Duration
}

// OCRConfig holds text-extraction-related configuration
type OCRConfig struct {
	Pdftotext string
	Pdftoppm  string
	Tesseract string
	Language  string
	DPI       int
	// minimum non-whitespace chars per page before falling back to OCR
	MinTextDensity int
}

// RegistryConfig holds enrichment-client configuration
type RegistryConfig struct {
	BaseURL       string
	APIKey        string
	ClientID      string
	Timeout       time.Duration
	RatePerMinute int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:     getEnv("GRPC_ADDR", ":8080"),
			StorageDir:   getEnv("STORAGE_DIR", "./storage"),
			MaxBatchSize: getEnvAsInt("MAX_BATCH_SIZE", 200),
		},
		Pipeline: PipelineConfig{
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			StageTimeout:   getEnvAsDuration("PIPELINE_STAGE_TIMEOUT", 3*time.Minute),
			MaxRetries:     getEnvAsInt("PIPELINE_MAX_RETRIES", 3),
			RetryBaseDelay: getEnvAsDuration("PIPELINE_RETRY_BASE_DELAY", 30*time.Second),
			PairingWindow:  getEnvAsDuration("PAIRING_WINDOW", 24*time.Hour),
		},
		OCR: OCRConfig{
			Pdftotext:      getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:       getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:      getEnv("TESSERACT_BIN", "tesseract"),
			Language:       getEnv("OCR_LANGUAGE", "spa"),
			DPI:            getEnvAsInt("OCR_DPI", 300),
			MinTextDensity: getEnvAsInt("OCR_MIN_TEXT_DENSITY", 120),
		},
		Registry: RegistryConfig{
			BaseURL:       getEnv("REGISTRY_BASE_URL", ""),
			APIKey:        getEnv("REGISTRY_API_KEY", ""),
			ClientID:      getEnv("REGISTRY_CLIENT_ID", "back-investigacion-vehiculos/1.0 (automated document pipeline)"),
			Timeout:       getEnvAsDuration("REGISTRY_TIMEOUT", 15*time.Second),
			RatePerMinute: getEnvAsInt("REGISTRY_RATE_PER_MINUTE", 60),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Registry.BaseURL != "" && c.Registry.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "REGISTRY_API_KEY is required when REGISTRY_BASE_URL is set", ErrInvalidInput)
	}
	return nil
}
