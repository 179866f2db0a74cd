package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Models  ModelsConfig
	Maps    MapsConfig
	MongoDB MongoDBConfig
	Pricing PricingConfig
	Audit   AuditConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// ModelsConfig points at the external inference endpoints. Either may be
// empty, in which case the image pathways answer service-unavailable.
type ModelsConfig struct {
	DetectorURL   string
	ClassifierURL string
}

// MapsConfig holds credentials for the Google mapping APIs. An empty key
// switches the rescue endpoints to mock data.
type MapsConfig struct {
	APIKey string
}

// MongoDBConfig holds settings for the decision audit log. An empty URI
// disables auditing.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// PricingConfig selects the produce policy variant.
type PricingConfig struct {
	ProducePolicy string
}

// AuditConfig holds scheduler-related settings.
type AuditConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Models: ModelsConfig{
			DetectorURL:   os.Getenv("DETECTOR_URL"),
			ClassifierURL: os.Getenv("CLASSIFIER_URL"),
		},
		Maps: MapsConfig{
			APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "resqcart"),
		},
		Pricing: PricingConfig{
			ProducePolicy: getenvWithDefault("PRODUCE_POLICY", "produce_v1"),
		},
		Audit: AuditConfig{
			CronSchedule: getenvWithDefault("AUDIT_CRON_SCHEDULE", "0 20 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Pricing.ProducePolicy {
	case "produce_v1", "produce_v2":
	default:
		return fmt.Errorf("PRODUCE_POLICY must be produce_v1 or produce_v2, got %q", c.Pricing.ProducePolicy)
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	if c.Audit.CronSchedule == "" {
		return errors.New("AUDIT_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
