package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COVREPORT_DB", "")
	t.Setenv("COVREPORT_GENERATOR", "")
	t.Setenv("COVREPORT_LOG_LEVEL", "")
	t.Setenv("COVREPORT_DB_RETENTION_RUNS", "")
	t.Setenv("COVREPORT_NO_HISTORY", "")

	cfg := Load()
	assert.Equal(t, ".covreport/covreport.db", cfg.DatabaseDSN)
	assert.Equal(t, "reportgenerator", cfg.Generator)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 50, cfg.RetentionRuns)
	assert.False(t, cfg.NoHistory)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("COVREPORT_DB", "libsql://runs.example.io")
	t.Setenv("COVREPORT_GENERATOR", "/usr/local/bin/reportgenerator")
	t.Setenv("COVREPORT_LOG_LEVEL", "debug")
	t.Setenv("COVREPORT_DB_RETENTION_RUNS", "7")
	t.Setenv("COVREPORT_NO_HISTORY", "1")

	cfg := Load()
	assert.Equal(t, "libsql://runs.example.io", cfg.DatabaseDSN)
	assert.Equal(t, "/usr/local/bin/reportgenerator", cfg.Generator)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.RetentionRuns)
	assert.True(t, cfg.NoHistory)
}

func TestLoadIgnoresInvalidRetention(t *testing.T) {
	t.Setenv("COVREPORT_DB_RETENTION_RUNS", "not-a-number")
	assert.Equal(t, 50, Load().RetentionRuns)

	t.Setenv("COVREPORT_DB_RETENTION_RUNS", "-3")
	assert.Equal(t, 50, Load().RetentionRuns)
}
