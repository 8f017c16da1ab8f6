package cli

import (
	"math"
	"testing"

	"github.com/theirongolddev/taxdiff/internal/tax"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{10400.4, "₹10,400"},
		{12500.5, "₹12,501"},
		{1234567, "₹1,234,567"},
		{-2600, "-₹2,600"},
		{-0.3, "₹0"},
		{1e20, "₹100,000,000,000,000,000,000"},
		{-1e20, "-₹100,000,000,000,000,000,000"},
		{math.Inf(1), "₹∞"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{400, "400"},
		{12500, "12.5K"},
		{250000, "2.5L"},
		{1000000, "10L"},
		{12000000, "1.2Cr"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRateAndBracket(t *testing.T) {
	if got := FormatRate(0.05); got != "5%" {
		t.Fatalf("FormatRate(0.05) = %q", got)
	}
	if got := FormatRate(0.3); got != "30%" {
		t.Fatalf("FormatRate(0.3) = %q", got)
	}

	b := tax.Bracket{Lower: 250000, Upper: 500000, Rate: 0.05}
	if got := FormatBracket(b); got != "₹250,000 – ₹500,000" {
		t.Fatalf("FormatBracket = %q", got)
	}
	open := tax.Bracket{Lower: 1000000, Upper: math.Inf(1), Rate: 0.3}
	if got := FormatBracket(open); got != "₹1,000,000 – ∞" {
		t.Fatalf("FormatBracket(open) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		100:      "100",
		1000:     "1,000",
		250000:   "250,000",
		-1234567: "-1,234,567",

		math.MaxInt64: "9,223,372,036,854,775,807",
		math.MinInt64: "-9,223,372,036,854,775,808",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
