// Package config implements configuration management commands for dirsplit.
package config

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for configuration management.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage the dirsplit configuration file.

Examples:
  # Validate the configuration
  dirsplit config validate

  # Generate a JSON schema for IDE completion
  dirsplit config schema

  # Open the configuration in your editor
  dirsplit config edit`,
}

func init() {
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(schemaCmd)
	Cmd.AddCommand(editCmd)
}
