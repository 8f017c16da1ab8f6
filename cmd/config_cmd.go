package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/taxdiff/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadedConfig

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:  %s%s\n", cfg.Appearance.Theme, envNote(config.EnvTheme))
	fmt.Printf("    Layout: %s\n", cfg.Appearance.Layout)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:   %s%s\n", cfg.Server.Addr, envNote(config.EnvAddr))
	fmt.Printf("    Log level: %s%s\n", cfg.Server.LogLevel, envNote(config.EnvLogLevel))
	fmt.Println()

	fmt.Println("  Run `taxdiff setup` to reconfigure.")
	return nil
}

func envNote(key string) string {
	if os.Getenv(key) != "" {
		return fmt.Sprintf(" (from %s)", key)
	}
	return ""
}
