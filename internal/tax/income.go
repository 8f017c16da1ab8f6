package tax

import (
	"errors"
	"fmt"
	"math"
)

// Fixed statutory constants shared by both regimes.
const (
	StandardDeduction      = 50_000.0
	SurchargeRate          = 0.04
	LongTermGainsExemption = 100_000.0
	ShortTermGainsRate     = 0.15
	LongTermGainsRate      = 0.10
	LotteryAndCryptoRate   = 0.30

	// MaxAmount bounds every input amount so sums and products stay finite.
	MaxAmount = 1e15
)

// ErrNegativeAmount is returned by boundary validation for negative or
// non-finite input amounts.
var ErrNegativeAmount = errors.New("amount must be a non-negative number")

// ErrAmountTooLarge is returned by boundary validation for amounts above
// MaxAmount.
var ErrAmountTooLarge = errors.New("amount exceeds the supported maximum")

// Income holds the slab-taxed income lines.
type Income struct {
	Salary float64 `json:"salary"`
	Other  float64 `json:"other_income"`
}

// Gross returns salary plus other income.
func (i Income) Gross() float64 {
	return i.Salary + i.Other
}

// SpecialIncome is taxed at flat rates outside the slab schedule.
type SpecialIncome struct {
	ShortTermGains  float64 `json:"stcg"`
	LongTermGains   float64 `json:"ltcg"`
	LotteryWinnings float64 `json:"lottery"`
	CryptoIncome    float64 `json:"crypto"`
}

// OldRegimeDeductions are the itemized deductions admitted by the old regime.
// The standard deduction is added on top by Total.
type OldRegimeDeductions struct {
	Section80C   float64 `json:"section_80c"`
	Section80D   float64 `json:"section_80d"`
	HRA          float64 `json:"hra"`
	Section80TTA float64 `json:"section_80tta"`
}

// Total returns the standard deduction plus all itemized deductions.
func (d OldRegimeDeductions) Total() float64 {
	return StandardDeduction + d.Section80C + d.Section80D + d.HRA + d.Section80TTA
}

// NewRegimeDeductions returns the only deduction the new regime admits.
func NewRegimeDeductions() float64 {
	return StandardDeduction
}

// Input is everything CompareRegimes needs for one comparison.
type Input struct {
	GrossIncome   float64
	OldDeductions float64
	NewDeductions float64
	Special       SpecialIncome
}

// NewInput assembles an Input from raw income lines and itemized deductions.
func NewInput(income Income, deductions OldRegimeDeductions, special SpecialIncome) Input {
	return Input{
		GrossIncome:   income.Gross(),
		OldDeductions: deductions.Total(),
		NewDeductions: NewRegimeDeductions(),
		Special:       special,
	}
}

// Validate rejects negative, non-finite or oversized amounts. Callers run it
// at the input boundary; the engine itself assumes valid input.
func (in Input) Validate() error {
	return checkAmounts(
		namedAmount{"gross income", in.GrossIncome},
		namedAmount{"old regime deductions", in.OldDeductions},
		namedAmount{"new regime deductions", in.NewDeductions},
		namedAmount{"short-term gains", in.Special.ShortTermGains},
		namedAmount{"long-term gains", in.Special.LongTermGains},
		namedAmount{"lottery winnings", in.Special.LotteryWinnings},
		namedAmount{"crypto income", in.Special.CryptoIncome},
	)
}

// CheckAmount returns ErrNegativeAmount, wrapped with the field name, when v
// is negative, NaN or infinite, and ErrAmountTooLarge above MaxAmount.
func CheckAmount(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %w (got %v)", field, ErrNegativeAmount, v)
	}
	if v > MaxAmount {
		return fmt.Errorf("%s: %w (got %v)", field, ErrAmountTooLarge, v)
	}
	return nil
}

func checkAmounts(fields ...namedAmount) error {
	for _, f := range fields {
		if err := CheckAmount(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

type namedAmount struct {
	name  string
	value float64
}

// Validate rejects invalid income lines.
func (i Income) Validate() error {
	return checkAmounts(
		namedAmount{"salary", i.Salary},
		namedAmount{"other income", i.Other},
	)
}

// Validate rejects invalid itemized deductions.
func (d OldRegimeDeductions) Validate() error {
	return checkAmounts(
		namedAmount{"80C", d.Section80C},
		namedAmount{"80D", d.Section80D},
		namedAmount{"HRA", d.HRA},
		namedAmount{"80TTA", d.Section80TTA},
	)
}

// Validate rejects invalid flat-rate income lines.
func (si SpecialIncome) Validate() error {
	return checkAmounts(
		namedAmount{"short-term gains", si.ShortTermGains},
		namedAmount{"long-term gains", si.LongTermGains},
		namedAmount{"lottery winnings", si.LotteryWinnings},
		namedAmount{"crypto income", si.CryptoIncome},
	)
}
