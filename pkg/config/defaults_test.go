package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
}

func TestApplyDefaults_Progress(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Progress.Interval != 100 {
		t.Errorf("Expected default progress interval 100, got %d", cfg.Progress.Interval)
	}
}

func TestApplyDefaults_Telemetry(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Telemetry.Endpoint != "localhost:4317" {
		t.Errorf("Expected default telemetry endpoint, got %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.SampleRate != 1.0 {
		t.Errorf("Expected default sample rate 1.0, got %v", cfg.Telemetry.SampleRate)
	}
	if cfg.Telemetry.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected default shutdown timeout 5s, got %v", cfg.Telemetry.ShutdownTimeout)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "DEBUG",
			Format: "json",
			Output: "/var/log/dirsplit.log",
		},
		Progress: ProgressConfig{
			Interval: 10,
		},
		Telemetry: TelemetryConfig{
			Endpoint:        "collector:4317",
			SampleRate:      0.5,
			ShutdownTimeout: 30 * time.Second,
		},
	}

	ApplyDefaults(cfg)

	// Verify explicit values were preserved
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected explicit level 'DEBUG' to be preserved, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected explicit format 'json' to be preserved, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "/var/log/dirsplit.log" {
		t.Errorf("Expected explicit output to be preserved, got %q", cfg.Logging.Output)
	}
	if cfg.Progress.Interval != 10 {
		t.Errorf("Expected explicit interval 10 to be preserved, got %d", cfg.Progress.Interval)
	}
	if cfg.Telemetry.Endpoint != "collector:4317" {
		t.Errorf("Expected explicit endpoint to be preserved, got %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.SampleRate != 0.5 {
		t.Errorf("Expected explicit sample rate 0.5 to be preserved, got %v", cfg.Telemetry.SampleRate)
	}
	if cfg.Telemetry.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected explicit shutdown timeout 30s to be preserved, got %v", cfg.Telemetry.ShutdownTimeout)
	}
}

func TestApplyDefaults_NormalizesLogLevel(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "warn"}}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected 'warn' to be normalized to 'WARN', got %q", cfg.Logging.Level)
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	cfg := GetDefaultConfig()

	// The default config should pass validation
	err := Validate(cfg)
	if err != nil {
		t.Errorf("Default config should be valid, got error: %v", err)
	}
}
