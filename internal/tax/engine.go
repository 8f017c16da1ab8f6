package tax

import (
	"fmt"
	"math"
)

// Regime identifies one of the two modeled tax regimes.
type Regime string

// Supported regimes.
const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Schedule returns the slab schedule for the regime.
func (r Regime) Schedule() Schedule {
	if r == RegimeNew {
		return NewRegimeSchedule
	}
	return OldRegimeSchedule
}

// Title returns "Old Regime" or "New Regime".
func (r Regime) Title() string {
	return r.Schedule().Name()
}

// BracketTax is one row of a slab calculation: the part of taxable income
// that fell into Bracket and the tax it produced.
type BracketTax struct {
	Bracket Bracket `json:"bracket"`
	Taxable float64 `json:"taxable"`
	Tax     float64 `json:"tax"`
}

// Breakdown is the full result of taxing one regime.
type Breakdown struct {
	Regime        Regime       `json:"regime"`
	GrossIncome   float64      `json:"gross_income"`
	Deductions    float64      `json:"deductions"`
	TaxableIncome float64      `json:"taxable_income"`
	SlabTax       float64      `json:"slab_tax"`
	SpecialTax    float64      `json:"special_tax"`
	Surcharge     float64      `json:"surcharge"`
	Total         float64      `json:"total"`
	Brackets      []BracketTax `json:"brackets"`
}

// Comparison holds both regimes' breakdowns and the savings of switching
// from the old regime to the new one.
type Comparison struct {
	Old     Breakdown `json:"old"`
	New     Breakdown `json:"new"`
	Savings float64   `json:"savings"`
	Better  Regime    `json:"better_regime"`
}

// SlabBreakdown returns one row per bracket that taxable income reaches, in
// ascending order. Brackets above the income are omitted.
func SlabBreakdown(taxable float64, s Schedule) []BracketTax {
	var rows []BracketTax
	for _, b := range s.brackets {
		if taxable <= b.Lower {
			break
		}
		portion := math.Min(taxable, b.Upper) - b.Lower
		rows = append(rows, BracketTax{
			Bracket: b,
			Taxable: portion,
			Tax:     portion * b.Rate,
		})
	}
	return rows
}

// ComputeSlabTax applies the schedule's marginal rates to taxable income.
func ComputeSlabTax(taxable float64, s Schedule) float64 {
	var total float64
	for _, row := range SlabBreakdown(taxable, s) {
		total += row.Tax
	}
	return total
}

// ComputeSpecialTax taxes capital gains, lottery and crypto income at their
// flat rates. Long-term gains are exempt up to LongTermGainsExemption.
func ComputeSpecialTax(si SpecialIncome) float64 {
	return si.ShortTermGains*ShortTermGainsRate +
		math.Max(0, si.LongTermGains-LongTermGainsExemption)*LongTermGainsRate +
		(si.LotteryWinnings+si.CryptoIncome)*LotteryAndCryptoRate
}

// ComputeRegimeTax computes the breakdown for one schedule. Surcharge (cess)
// is levied on slab and special tax together.
func ComputeRegimeTax(gross, deductions float64, si SpecialIncome, s Schedule, surchargeRate float64) Breakdown {
	taxable := math.Max(0, gross-deductions)
	rows := SlabBreakdown(taxable, s)

	var slab float64
	for _, row := range rows {
		slab += row.Tax
	}
	special := ComputeSpecialTax(si)
	surcharge := (slab + special) * surchargeRate

	return Breakdown{
		GrossIncome:   gross,
		Deductions:    deductions,
		TaxableIncome: taxable,
		SlabTax:       slab,
		SpecialTax:    special,
		Surcharge:     surcharge,
		Total:         slab + special + surcharge,
		Brackets:      rows,
	}
}

// CompareRegimes taxes the input under both regimes. Better is RegimeNew
// only when it is strictly cheaper; ties go to RegimeOld.
func CompareRegimes(in Input) Comparison {
	oldB := ComputeRegimeTax(in.GrossIncome, in.OldDeductions, in.Special, OldRegimeSchedule, SurchargeRate)
	oldB.Regime = RegimeOld
	newB := ComputeRegimeTax(in.GrossIncome, in.NewDeductions, in.Special, NewRegimeSchedule, SurchargeRate)
	newB.Regime = RegimeNew

	c := Comparison{
		Old:     oldB,
		New:     newB,
		Savings: oldB.Total - newB.Total,
		Better:  RegimeOld,
	}
	if c.Savings > 0 {
		c.Better = RegimeNew
	}
	return c
}

// Verdict is the one-line recommendation shown under the comparison table.
func (c Comparison) Verdict() string {
	return fmt.Sprintf("%s is Better", c.Better.Title())
}

// AbsSavings is the amount saved by picking the better regime.
func (c Comparison) AbsSavings() float64 {
	return math.Abs(c.Savings)
}

// Share is one labelled slice of a regime's total tax.
type Share struct {
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Fraction float64 `json:"fraction"`
}

// Distribution splits the total into slab, special and cess parts. Fractions
// are zero when the total is zero.
func (b Breakdown) Distribution() []Share {
	parts := []Share{
		{Label: "Tax Slab", Amount: b.SlabTax},
		{Label: "Special Income", Amount: b.SpecialTax},
		{Label: "Cess", Amount: b.Surcharge},
	}
	if b.Total > 0 {
		for i := range parts {
			parts[i].Fraction = parts[i].Amount / b.Total
		}
	}
	return parts
}
