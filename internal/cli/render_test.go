package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/charmbracelet/lipgloss"
)

func sampleComparison() tax.Comparison {
	return tax.CompareRegimes(tax.Input{
		GrossIncome:   600000,
		OldDeductions: 150000,
		NewDeductions: tax.NewRegimeDeductions(),
	})
}

func TestRenderTable_LinesShareWidth(t *testing.T) {
	out := RenderTable(ComparisonTable(sampleComparison()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Skip the title line; every bordered line must be the same width even
	// though cells contain multi-byte runes.
	want := lipgloss.Width(lines[1])
	for i, line := range lines[1:] {
		if got := lipgloss.Width(line); got != want {
			t.Fatalf("line %d width = %d, want %d: %q", i+1, got, want, line)
		}
	}
}

func TestComparisonTable_Values(t *testing.T) {
	tbl := ComparisonTable(sampleComparison())

	if len(tbl.Headers) != 3 || tbl.Headers[1] != "Old Regime" || tbl.Headers[2] != "New Regime" {
		t.Fatalf("headers = %v", tbl.Headers)
	}

	byLabel := make(map[string][]string)
	for _, r := range tbl.Rows {
		byLabel[r[0]] = r
	}

	checks := map[string][2]string{
		"Taxable Income":    {"₹450,000", "₹550,000"},
		"Tax from Slab":     {"₹10,000", "₹12,500"},
		"Cess (4%)":         {"₹400", "₹500"},
		"Total Tax Payable": {"₹10,400", "₹13,000"},
	}
	for label, want := range checks {
		row, ok := byLabel[label]
		if !ok {
			t.Fatalf("missing row %q", label)
		}
		if row[1] != want[0] || row[2] != want[1] {
			t.Errorf("%s = %v, want %v", label, row[1:], want)
		}
	}
}

func TestSlabTable_RowsAndTotal(t *testing.T) {
	c := sampleComparison()
	tbl := SlabTable(c.New)

	// 2 brackets reached + separator + total
	if len(tbl.Rows) != 4 {
		t.Fatalf("rows = %d, want 4: %v", len(tbl.Rows), tbl.Rows)
	}
	if tbl.Rows[1][0] != "₹300,000 – ₹600,000" || tbl.Rows[1][2] != "₹250,000" {
		t.Fatalf("second bracket row = %v", tbl.Rows[1])
	}
	last := tbl.Rows[len(tbl.Rows)-1]
	if last[0] != "TOTAL" || last[3] != "₹12,500" {
		t.Fatalf("total row = %v", last)
	}
}

func TestDistributionTable(t *testing.T) {
	tbl := DistributionTable(sampleComparison().Old)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Rows[2][0] != "Cess" || tbl.Rows[2][2] != "3.8%" {
		t.Fatalf("cess row = %v", tbl.Rows[2])
	}
}

func TestRenderVerdictAndChart(t *testing.T) {
	c := sampleComparison()

	verdict := RenderVerdict(c)
	if !strings.Contains(verdict, "Old Regime is Better") || !strings.Contains(verdict, "₹2,600") {
		t.Fatalf("verdict = %q", verdict)
	}

	chart := RenderTotalsChart(c, 20)
	if !strings.Contains(chart, "₹10,400") || !strings.Contains(chart, "₹13,000") {
		t.Fatalf("chart missing totals: %q", chart)
	}
	if !strings.Contains(chart, strings.Repeat("█", 20)) {
		t.Fatalf("larger total should fill the bar: %q", chart)
	}
}

func TestRenderHorizontalBar_ZeroMax(t *testing.T) {
	got := RenderHorizontalBar("Old", 0, 0, 10, lipgloss.Color("1"))
	if strings.Contains(got, "█") {
		t.Fatalf("zero max should render no bar: %q", got)
	}
}

func TestScheduleTable(t *testing.T) {
	tbl := ScheduleTable(tax.NewRegimeSchedule)
	if len(tbl.Rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(tbl.Rows))
	}
	if got := tbl.Rows[0]; got[0] != "₹0 – ₹300,000" || got[1] != "0%" {
		t.Fatalf("first row = %v", got)
	}
	if got := tbl.Rows[5]; got[0] != "₹1,500,000 – ∞" || got[1] != "30%" {
		t.Fatalf("last row = %v", got)
	}
	if tbl.Title != "New Regime Slabs" {
		t.Fatalf("title = %q", tbl.Title)
	}
}
