// Package config loads runtime configuration from flags, environment
// variables, and .env files. Matching thresholds and field precedence are
// deliberately not configurable; only paths, concurrency, and logging are.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Paths
	InputDir  string // per-brand source documents: <inputDir>/<brandId>/{commercial,manufacturer}.json
	OutputDir string // unified catalogs: <outputDir>/<brandId>.json
	Manifest  string // brand manifest; defaults to <inputDir>/brands.yaml

	// Execution
	Workers int // zero means one worker per CPU core

	// Logging
	Verbose   bool
	LogLevel  string
	LogFormat string
}

// Load builds configuration from all sources in order of precedence:
// environment variables, then .env files, then defaults. Command-line flags
// are bound on top by the CLI layer.
func Load() *Config {
	loadEnvFiles()

	viper.SetEnvPrefix("UNISON")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("input_dir", "data/input")
	viper.SetDefault("output_dir", "data/catalogs")
	viper.SetDefault("workers", 0)

	return &Config{
		InputDir:  viper.GetString("input_dir"),
		OutputDir: viper.GetString("output_dir"),
		Manifest:  viper.GetString("manifest"),
		Workers:   viper.GetInt("workers"),
		Verbose:   viper.GetBool("verbose"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}
}

// loadEnvFiles loads .env files from the working directory. Existing
// environment variables are never overridden.
func loadEnvFiles() {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
