package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tax"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// Seed is the set of amounts the form starts with.
type Seed struct {
	Income     tax.Income
	Deductions tax.OldRegimeDeductions
	Special    tax.SpecialIncome
}

// IsZero reports whether every amount is zero.
func (s Seed) IsZero() bool {
	return s == Seed{}
}

// Input converts the seed into an engine input.
func (s Seed) Input() tax.Input {
	return tax.NewInput(s.Income, s.Deductions, s.Special)
}

// formValues backs the huh inputs. It lives behind a pointer so copies of
// App keep writing to the same strings.
type formValues struct {
	salary, other               string
	stcg, ltcg, lottery, crypto string
	sec80C, sec80D, hra, sec80T string
}

func newFormValues(s Seed) *formValues {
	return &formValues{
		salary:  amountString(s.Income.Salary),
		other:   amountString(s.Income.Other),
		stcg:    amountString(s.Special.ShortTermGains),
		ltcg:    amountString(s.Special.LongTermGains),
		lottery: amountString(s.Special.LotteryWinnings),
		crypto:  amountString(s.Special.CryptoIncome),
		sec80C:  amountString(s.Deductions.Section80C),
		sec80D:  amountString(s.Deductions.Section80D),
		hra:     amountString(s.Deductions.HRA),
		sec80T:  amountString(s.Deductions.Section80TTA),
	}
}

func amountString(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseAmount accepts blanks as zero and tolerates "1,00,000" style grouping.
func parseAmount(field, s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "₹")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", field, s)
	}
	if err := tax.CheckAmount(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// seed parses all form values. Validators have already run, so an error
// here means the form was bypassed.
func (v *formValues) seed() (Seed, error) {
	var s Seed
	for _, f := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"salary", v.salary, &s.Income.Salary},
		{"other income", v.other, &s.Income.Other},
		{"short-term gains", v.stcg, &s.Special.ShortTermGains},
		{"long-term gains", v.ltcg, &s.Special.LongTermGains},
		{"lottery winnings", v.lottery, &s.Special.LotteryWinnings},
		{"crypto income", v.crypto, &s.Special.CryptoIncome},
		{"80C", v.sec80C, &s.Deductions.Section80C},
		{"80D", v.sec80D, &s.Deductions.Section80D},
		{"HRA", v.hra, &s.Deductions.HRA},
		{"80TTA", v.sec80T, &s.Deductions.Section80TTA},
	} {
		amount, err := parseAmount(f.name, f.raw)
		if err != nil {
			return Seed{}, err
		}
		*f.dst = amount
	}
	return s, nil
}

func amountInput(title, description string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Placeholder("0").
		Value(value).
		Validate(func(s string) error {
			_, err := parseAmount(title, s)
			return err
		})
}

// newIncomeForm builds the three-page amount form.
func newIncomeForm(v *formValues) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			amountInput("Salary", "Annual salary income", &v.salary),
			amountInput("Other income", "Interest, rent and other slab-taxed income", &v.other),
		).Title("Income"),
		huh.NewGroup(
			amountInput("Short-term capital gains", "Taxed at 15%", &v.stcg),
			amountInput("Long-term capital gains", "10% above the first ₹100,000", &v.ltcg),
			amountInput("Lottery winnings", "Taxed at 30%", &v.lottery),
			amountInput("Crypto income", "Taxed at 30%", &v.crypto),
		).Title("Special income"),
		huh.NewGroup(
			amountInput("Section 80C", "PPF, ELSS, life insurance premiums", &v.sec80C),
			amountInput("Section 80D", "Health insurance premiums", &v.sec80D),
			amountInput("HRA", "House rent allowance exemption", &v.hra),
			amountInput("Section 80TTA", "Savings account interest", &v.sec80T),
		).Title("Old regime deductions").
			Description("The ₹50,000 standard deduction applies to both regimes automatically."),
	).WithShowHelp(true)

	return form.WithTheme(formTheme())
}

func formTheme() *huh.Theme {
	if theme.Active.Name == theme.NameLight {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
