package config

import (
	"os"
	"strconv"
)

// Config holds the tool's environment-driven configuration.
type Config struct {
	DatabaseDSN   string
	RetentionRuns int
	Generator     string
	LogLevel      string
	NoHistory     bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		DatabaseDSN:   os.Getenv("COVREPORT_DB"),
		RetentionRuns: 50, // Default value
		Generator:     os.Getenv("COVREPORT_GENERATOR"),
		LogLevel:      os.Getenv("COVREPORT_LOG_LEVEL"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = ".covreport/covreport.db"
	}
	if cfg.Generator == "" {
		cfg.Generator = "reportgenerator"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if retentionStr := os.Getenv("COVREPORT_DB_RETENTION_RUNS"); retentionStr != "" {
		if retention, err := strconv.Atoi(retentionStr); err == nil && retention >= 0 {
			cfg.RetentionRuns = retention
		}
	}

	if noHistory := os.Getenv("COVREPORT_NO_HISTORY"); noHistory == "1" || noHistory == "true" {
		cfg.NoHistory = true
	}

	return cfg
}
