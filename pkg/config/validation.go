package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks that the configuration is structurally valid.
//
// Validation covers two layers:
//  1. Struct tag validation (required fields, value ranges, enums)
//  2. Cross-field rules that tags cannot express
//
// Validate does not mutate the configuration; normalization (such as
// upper-casing the log level) happens in ApplyDefaults.
func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := validateMetrics(&cfg.Metrics); err != nil {
		return err
	}
	if err := validateTelemetry(&cfg.Telemetry); err != nil {
		return err
	}

	return nil
}

// validateMetrics checks cross-field metrics rules.
func validateMetrics(cfg *MetricsConfig) error {
	// The textfile path only matters when export is on, so it cannot be
	// a plain "required" tag.
	if cfg.Enabled && cfg.TextfilePath == "" {
		return fmt.Errorf("metrics export is enabled but no textfile_path is configured")
	}
	return nil
}

// validateTelemetry checks cross-field telemetry rules.
func validateTelemetry(cfg *TelemetryConfig) error {
	if cfg.Enabled && cfg.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but no endpoint is configured")
	}
	if cfg.ShutdownTimeout < 0 {
		return fmt.Errorf("telemetry shutdown_timeout must not be negative")
	}
	return nil
}
