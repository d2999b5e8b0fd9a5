package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configTemplate is the commented scaffold written by 'dirsplit init'.
// It mirrors GetDefaultConfig so a freshly generated file loads cleanly.
const configTemplate = `# Dirsplit Configuration File
#
# Generated by 'dirsplit init'. Every setting can be overridden with a
# DIRSPLIT_* environment variable, e.g. DIRSPLIT_LOGGING_LEVEL=DEBUG.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: "INFO"
  # Output format: text, json
  format: "text"
  # Where logs are written: stdout, stderr, or a file path
  output: "stdout"

progress:
  # Shard-index interval between progress notifications
  interval: 100

metrics:
  # Write run metrics in the Prometheus text format when enabled
  enabled: false
  # Destination file, e.g. /var/lib/node_exporter/textfile/dirsplit.prom
  textfile_path: ""

telemetry:
  # Export OpenTelemetry traces when enabled
  enabled: false
  # OTLP gRPC collector endpoint
  endpoint: "localhost:4317"
  # Use a non-TLS connection to the collector
  insecure: true
  # Trace sampling rate between 0.0 and 1.0
  sample_rate: 1.0
  # Maximum time to wait for span export when the run finishes
  shutdown_timeout: "5s"

confirm:
  # Skip the confirmation prompt shown before a move run
  assume_yes: false
`

// InitConfig creates a configuration file at the default location.
//
// Returns the path of the created file. If the file already exists and
// force is false, an error is returned.
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath creates a configuration file at the given path,
// creating parent directories as needed.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600 keeps parity with SaveConfig
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
