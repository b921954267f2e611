package config

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDatabase is used when neither MONGODB_DATABASE nor the URI path names one.
const DefaultDatabase = "trading_analytics_db"

// SeedCount is the number of documents generated per collection.
const SeedCount = 100

// MaxSeedParallelism bounds SEED_PARALLELISM, one slot per collection.
const MaxSeedParallelism = 20

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	MONGODB_URI=mongodb://localhost:27017/trading_analytics_db
//	MONGODB_DATABASE=trading_analytics_db
//	MONGODB_TIMEOUT=10s
//	SEED_PARALLELISM=0
type Config struct {
	Server ServerConfig // HTTP server configuration
	Mongo  MongoConfig  // MongoDB connection settings
	Seed   SeedConfig   // Seeding pipeline settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MongoConfig defines connection details for MongoDB.
//
// Fields:
//   - URI: connection string passed to the driver.
//   - Database: target database name.
//   - Timeout: bound for connect and ping.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// SeedConfig tunes the seeding pipeline.
type SeedConfig struct {
	Count       int
	Parallelism int // cap on concurrent store operations, 0 = unbounded, at most MaxSeedParallelism
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017/"+DefaultDatabase)
	viper.SetDefault("MONGODB_DATABASE", "")
	viper.SetDefault("MONGODB_TIMEOUT", "10s")
	viper.SetDefault("SEED_PARALLELISM", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	uri := viper.GetString("MONGODB_URI")
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:      uri,
			Database: databaseName(viper.GetString("MONGODB_DATABASE"), uri),
			Timeout:  viper.GetDuration("MONGODB_TIMEOUT"),
		},
		Seed: SeedConfig{
			Count:       SeedCount,
			Parallelism: viper.GetInt("SEED_PARALLELISM"),
		},
	}

	validateConfig()
}

// databaseName prefers an explicit name, then the path of the connection
// string, then DefaultDatabase.
func databaseName(explicit, uri string) string {
	if explicit != "" {
		return explicit
	}
	if u, err := url.Parse(uri); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return DefaultDatabase
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Mongo.URI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if AppConfig.Mongo.Timeout <= 0 {
		missing = append(missing, "MONGODB_TIMEOUT")
	}
	if AppConfig.Seed.Parallelism < 0 || AppConfig.Seed.Parallelism > MaxSeedParallelism {
		missing = append(missing, "SEED_PARALLELISM")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
