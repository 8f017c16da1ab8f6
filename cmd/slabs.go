package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/taxdiff/internal/cli"
	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/spf13/cobra"
)

var flagSchedulesOnly bool

var slabsCmd = &cobra.Command{
	Use:   "slabs",
	Short: "Per-slab tax calculation for both regimes",
	RunE:  runSlabs,
}

func init() {
	slabsCmd.Flags().BoolVar(&flagSchedulesOnly, "schedules", false, "List the slab schedules without computing tax")
	rootCmd.AddCommand(slabsCmd)
}

func runSlabs(_ *cobra.Command, _ []string) error {
	if flagSchedulesOnly {
		for _, r := range []tax.Regime{tax.RegimeOld, tax.RegimeNew} {
			fmt.Println()
			fmt.Print(cli.RenderTable(cli.ScheduleTable(r.Schedule())))
		}
		fmt.Println()
		return nil
	}

	in, err := buildInput()
	if err != nil {
		return err
	}
	if in.GrossIncome == 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  No income given; pass --salary or --schedules\n")
	}

	c := tax.CompareRegimes(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SLAB CALCULATION"))
	for _, b := range []tax.Breakdown{c.Old, c.New} {
		fmt.Println()
		fmt.Printf("  Taxable income %s (gross %s − deductions %s)\n",
			cli.FormatAmount(b.TaxableIncome), cli.FormatAmount(b.GrossIncome), cli.FormatAmount(b.Deductions))
		fmt.Print(cli.RenderTable(cli.SlabTable(b)))
	}
	fmt.Println()

	return nil
}
