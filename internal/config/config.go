package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"SensorGrid.mongoDB/internal/logging"
)

// Config holds the application's configuration.
type Config struct {
	Port              string
	MongoURI          string
	MongoDatabase     string
	CORSAllowedOrigin string
	LogLevel          string
	LogFormat         string

	// Optional InfluxDB settings for the readings time-series mirror.
	// The mirror stays disabled while InfluxURL or InfluxToken is empty.
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	// Load env variables from a .env file when present.
	if err := godotenv.Load(); err != nil {
		logging.Info().Msg("no .env file found, relying on system environment variables")
	}

	cfg := Config{
		Port:              getEnv("PORT", "8000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnv("MONGO_DB", "iot_monitor"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		InfluxURL:         os.Getenv("INFLUXDB_URL"),
		InfluxToken:       os.Getenv("INFLUXDB_TOKEN"),
		InfluxOrg:         getEnv("INFLUXDB_ORG", "sensorgrid"),
		InfluxBucket:      getEnv("INFLUXDB_BUCKET", "readings"),
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MongoDB configuration is incomplete. Please set the MONGO_URI environment variable")
	}
	return cfg, nil
}

// InfluxEnabled reports whether the readings mirror should be wired up.
func (c Config) InfluxEnabled() bool {
	return c.InfluxURL != "" && c.InfluxToken != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
