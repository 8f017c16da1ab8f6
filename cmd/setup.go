package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxdiff/internal/config"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive appearance and server setup",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so env overrides are not written back.
	cfg, err := config.LoadFile()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}
	layoutOpts := huh.NewOptions(config.Layouts...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewSelect[string]().
				Title("Layout").
				Description("auto stacks panels on narrow terminals").
				Options(layoutOpts...).
				Value(&cfg.Appearance.Layout),
		).Title("Appearance"),
		huh.NewGroup(
			huh.NewInput().
				Title("Listen address for `taxdiff serve`").
				Value(&cfg.Server.Addr).
				Validate(config.ValidateAddr),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&cfg.Server.LogLevel),
		).Title("Server"),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `taxdiff setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
