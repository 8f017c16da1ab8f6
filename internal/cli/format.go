// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tax"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// FormatAmount rounds to whole currency units and adds separators.
// e.g., 10400.4 -> "₹10,400"
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return CurrencySymbol + "∞"
	}
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	if r < 0 {
		return "-" + CurrencySymbol + groupDigits(strconv.FormatFloat(-r, 'f', 0, 64))
	}
	return CurrencySymbol + groupDigits(strconv.FormatFloat(r, 'f', 0, 64))
}

// FormatCompact formats an amount with K/L/Cr suffixes for chart labels.
// e.g., 250000 -> "2.5L", 12000000 -> "1.2Cr"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e7:
		return trimZero(fmt.Sprintf("%.1f", v/1e7)) + "Cr"
	case abs >= 1e5:
		return trimZero(fmt.Sprintf("%.1f", v/1e5)) + "L"
	case abs >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "K"
	default:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + groupDigits(s[1:])
	}
	return groupDigits(s)
}

// groupDigits inserts a comma every three digits of an unsigned decimal.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatRate formats a marginal rate as a whole percentage, e.g. 0.05 -> "5%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatBracket renders a bracket range, e.g. "₹250,000 – ₹500,000" or
// "₹1,000,000 – ∞".
func FormatBracket(b tax.Bracket) string {
	upper := "∞"
	if !b.Open() {
		upper = FormatAmount(b.Upper)
	}
	return FormatAmount(b.Lower) + " – " + upper
}
