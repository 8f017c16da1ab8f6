package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/cli"
	"github.com/theirongolddev/taxdiff/internal/config"
	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare total tax under both regimes",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	in, err := buildInput()
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Comparing regimes for gross income %s\n", cli.FormatAmount(in.GrossIncome))
	}

	c := tax.CompareRegimes(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle("OLD vs NEW REGIME"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ComparisonTable(c)))
	fmt.Println()
	fmt.Println(cli.RenderVerdict(c))
	fmt.Println()
	fmt.Print(cli.RenderTotalsChart(c, 30))
	fmt.Println()

	oldDist := cli.RenderTable(cli.DistributionTable(c.Old))
	newDist := cli.RenderTable(cli.DistributionTable(c.New))
	if compactOutput(lipgloss.Width(oldDist) + lipgloss.Width(newDist) + 2) {
		fmt.Print(oldDist)
		fmt.Println()
		fmt.Print(newDist)
	} else {
		fmt.Print(sideBySide(oldDist, newDist))
	}
	fmt.Println()

	return nil
}

// compactOutput reports whether tables should stack. The configured layout
// wins; "auto" compares the needed width against the terminal.
func compactOutput(needed int) bool {
	switch loadedConfig.Appearance.Layout {
	case config.LayoutCompact:
		return true
	case config.LayoutWide:
		return false
	}
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return true
	}
	return width < needed
}

func sideBySide(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.TrimRight(left, "\n"), "  ", strings.TrimRight(right, "\n")) + "\n"
}
