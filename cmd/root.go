// Package cmd implements the taxdiff CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/theirongolddev/taxdiff/internal/config"
	"github.com/theirongolddev/taxdiff/internal/tax"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagSalary   float64
	flagOther    float64
	flagSTCG     float64
	flagLTCG     float64
	flagLottery  float64
	flagCrypto   float64
	flag80C      float64
	flag80D      float64
	flagHRA      float64
	flag80TTA    float64
	flagQuiet    bool
	flagEnvFile  string
	loadedConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "taxdiff",
	Short: "Compare the old and new Indian income-tax regimes",
	Long: "Compute tax under the old and new regimes for the same income and " +
		"report which one costs less, with per-slab and cess breakdowns.",
	PersistentPreRunE: loadEnvironment,
	RunE:              runCompare,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagSalary, "salary", 0, "Annual salary income")
	pf.Float64Var(&flagOther, "other", 0, "Other slab-taxed income")
	pf.Float64Var(&flagSTCG, "stcg", 0, "Short-term capital gains (15%)")
	pf.Float64Var(&flagLTCG, "ltcg", 0, "Long-term capital gains (10% above ₹100,000)")
	pf.Float64Var(&flagLottery, "lottery", 0, "Lottery winnings (30%)")
	pf.Float64Var(&flagCrypto, "crypto", 0, "Crypto income (30%)")
	pf.Float64Var(&flag80C, "80c", 0, "Section 80C deduction (old regime)")
	pf.Float64Var(&flag80D, "80d", 0, "Section 80D deduction (old regime)")
	pf.Float64Var(&flagHRA, "hra", 0, "HRA exemption (old regime)")
	pf.Float64Var(&flag80TTA, "80tta", 0, "Section 80TTA deduction (old regime)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with TAXDIFF_* overrides")
}

// loadEnvironment reads the dotenv file (if any), then the config file with
// environment overrides, and activates the configured theme.
func loadEnvironment(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unusable, using defaults: %v\n", err)
		}
		cfg = config.ApplyEnv(config.DefaultConfig())
	}
	loadedConfig = cfg
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

// flagAmounts collects the income flags, rejecting negative, non-finite or
// oversized values before anything reaches the engine.
func flagAmounts() (tax.Income, tax.OldRegimeDeductions, tax.SpecialIncome, error) {
	income := tax.Income{Salary: flagSalary, Other: flagOther}
	deductions := tax.OldRegimeDeductions{
		Section80C:   flag80C,
		Section80D:   flag80D,
		HRA:          flagHRA,
		Section80TTA: flag80TTA,
	}
	special := tax.SpecialIncome{
		ShortTermGains:  flagSTCG,
		LongTermGains:   flagLTCG,
		LotteryWinnings: flagLottery,
		CryptoIncome:    flagCrypto,
	}

	if err := income.Validate(); err != nil {
		return income, deductions, special, err
	}
	if err := deductions.Validate(); err != nil {
		return income, deductions, special, err
	}
	if err := special.Validate(); err != nil {
		return income, deductions, special, err
	}
	return income, deductions, special, nil
}

// buildInput validates the flags and assembles the engine input. The summed
// totals are checked again since two valid lines can exceed MaxAmount.
func buildInput() (tax.Input, error) {
	income, deductions, special, err := flagAmounts()
	if err != nil {
		return tax.Input{}, err
	}
	in := tax.NewInput(income, deductions, special)
	if err := in.Validate(); err != nil {
		return tax.Input{}, err
	}
	return in, nil
}
