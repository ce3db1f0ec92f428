// Package config loads traindesk configuration from the environment, with an
// optional YAML file underneath. The two required values keep the names the
// deployment has always used: FILE_PATH for the record directory and PASSWORD
// for the shared secret.
package config

import (
	"fmt"
	"path/filepath"
)

// Record file names inside the base directory.
const (
	EmployeesFile = "employees.txt"
	TrainingsFile = "trainings.txt"
	RequestsFile  = "course_requests.txt"
)

// Config is the root application configuration.
type Config struct {
	// BaseDir is the directory holding the three record stores.
	BaseDir string `yaml:"base_dir" env:"FILE_PATH"`
	// Secret is the single shared password valid for every account. A known
	// security weakness of the scheme: there are no per-account credentials.
	Secret string `yaml:"secret" env:"PASSWORD"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// MetricsConfig gates the optional Prometheus endpoint. Disabled by default:
// the tool opens no sockets unless explicitly asked to.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Port    int  `yaml:"port"    env:"METRICS_PORT"    env-default:"9090"`
}

// EmployeesPath returns the employee record store location.
func (c *Config) EmployeesPath() string {
	return filepath.Join(c.BaseDir, EmployeesFile)
}

// TrainingsPath returns the training record store location.
func (c *Config) TrainingsPath() string {
	return filepath.Join(c.BaseDir, TrainingsFile)
}

// RequestsPath returns the course-request ledger location.
func (c *Config) RequestsPath() string {
	return filepath.Join(c.BaseDir, RequestsFile)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("FILE_PATH (base_dir) must be set")
	}
	if c.Secret == "" {
		return fmt.Errorf("PASSWORD (secret) must be set")
	}
	if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics port out of range: %d", c.Metrics.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
