package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dirsplit/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the dirsplit configuration file.

Checks for syntax errors, missing required fields, and invalid values.

Examples:
  # Validate default config
  dirsplit config validate

  # Validate specific config file
  dirsplit config validate --config /etc/dirsplit/config.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// Get config path from parent's persistent flag
	configPath, _ := cmd.Flags().GetString("config")

	// Load and validate configuration
	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	// Determine path for display
	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	// Additional validation checks
	var warnings []string

	if cfg.Confirm.AssumeYes {
		warnings = append(warnings, "confirm.assume_yes is set - move runs will never prompt")
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Insecure {
		warnings = append(warnings, "telemetry endpoint uses an insecure connection")
	}

	// Print results
	fmt.Printf("Configuration file: %s\n", displayPath)
	fmt.Println("Validation: OK")

	if len(warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Printf("\nConfiguration summary:\n")
	fmt.Printf("  Log level:         %s\n", cfg.Logging.Level)
	fmt.Printf("  Log format:        %s\n", cfg.Logging.Format)
	fmt.Printf("  Progress interval: %d\n", cfg.Progress.Interval)
	fmt.Printf("  Metrics export:    %s\n", enabledOrDisabled(cfg.Metrics.Enabled))
	fmt.Printf("  Telemetry:         %s\n", enabledOrDisabled(cfg.Telemetry.Enabled))

	return nil
}

func enabledOrDisabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
