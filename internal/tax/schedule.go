// Package tax computes income-tax liability under the old and new regimes.
//
// Everything in this package is a pure function of its arguments. The two
// schedules are built once at init and never mutated, so any number of
// goroutines may compute concurrently without coordination.
package tax

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Bracket is one slab of a schedule: income in (Lower, Upper] is taxed at Rate.
type Bracket struct {
	Lower float64
	Upper float64 // math.Inf(1) for the top bracket
	Rate  float64
}

// Open reports whether the bracket has no upper bound.
func (b Bracket) Open() bool {
	return math.IsInf(b.Upper, 1)
}

// String renders the bracket range, e.g. "250000-500000" or "1000000-∞".
func (b Bracket) String() string {
	upper := "∞"
	if !b.Open() {
		upper = strconv.FormatFloat(b.Upper, 'f', -1, 64)
	}
	return strconv.FormatFloat(b.Lower, 'f', -1, 64) + "-" + upper
}

// MarshalJSON encodes the open upper bound as null since JSON has no infinity.
// The label carries the String form.
func (b Bracket) MarshalJSON() ([]byte, error) {
	out := struct {
		Label string   `json:"label"`
		Lower float64  `json:"lower"`
		Upper *float64 `json:"upper"`
		Rate  float64  `json:"rate"`
	}{Label: b.String(), Lower: b.Lower, Rate: b.Rate}
	if !b.Open() {
		upper := b.Upper
		out.Upper = &upper
	}
	return json.Marshal(out)
}

// Schedule is an immutable ordered list of contiguous brackets starting at 0.
type Schedule struct {
	name     string
	brackets []Bracket
}

var errMalformedSchedule = errors.New("malformed schedule")

// NewSchedule validates brackets and returns a schedule owning a copy of them.
func NewSchedule(name string, brackets ...Bracket) (Schedule, error) {
	if len(brackets) == 0 {
		return Schedule{}, fmt.Errorf("%w %q: no brackets", errMalformedSchedule, name)
	}
	if brackets[0].Lower != 0 {
		return Schedule{}, fmt.Errorf("%w %q: first bracket starts at %v, want 0",
			errMalformedSchedule, name, brackets[0].Lower)
	}
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 || math.IsNaN(b.Rate) {
			return Schedule{}, fmt.Errorf("%w %q: bracket %d rate %v outside [0,1]",
				errMalformedSchedule, name, i, b.Rate)
		}
		if !(b.Upper > b.Lower) {
			return Schedule{}, fmt.Errorf("%w %q: bracket %d bounds %v..%v not increasing",
				errMalformedSchedule, name, i, b.Lower, b.Upper)
		}
		if i > 0 && b.Lower != brackets[i-1].Upper {
			return Schedule{}, fmt.Errorf("%w %q: gap or overlap between bracket %d and %d",
				errMalformedSchedule, name, i-1, i)
		}
	}
	if !brackets[len(brackets)-1].Open() {
		return Schedule{}, fmt.Errorf("%w %q: top bracket must be unbounded", errMalformedSchedule, name)
	}

	owned := make([]Bracket, len(brackets))
	copy(owned, brackets)
	return Schedule{name: name, brackets: owned}, nil
}

// MustSchedule is NewSchedule for package-level constants. A malformed
// schedule is a programming error, so it panics.
func MustSchedule(name string, brackets ...Bracket) Schedule {
	s, err := NewSchedule(name, brackets...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schedule's display name.
func (s Schedule) Name() string { return s.name }

// Len returns the number of brackets.
func (s Schedule) Len() int { return len(s.brackets) }

// Brackets returns a copy of the brackets in ascending order.
func (s Schedule) Brackets() []Bracket {
	out := make([]Bracket, len(s.brackets))
	copy(out, s.brackets)
	return out
}

// MarshalJSON exposes the schedule for GET /v1/schedules.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string    `json:"name"`
		Brackets []Bracket `json:"brackets"`
	}{s.name, s.brackets})
}

var inf = math.Inf(1)

// OldRegimeSchedule is the old-regime slab table.
var OldRegimeSchedule = MustSchedule("Old Regime",
	Bracket{Lower: 0, Upper: 250_000, Rate: 0},
	Bracket{Lower: 250_000, Upper: 500_000, Rate: 0.05},
	Bracket{Lower: 500_000, Upper: 1_000_000, Rate: 0.20},
	Bracket{Lower: 1_000_000, Upper: inf, Rate: 0.30},
)

// NewRegimeSchedule is the new-regime slab table.
var NewRegimeSchedule = MustSchedule("New Regime",
	Bracket{Lower: 0, Upper: 300_000, Rate: 0},
	Bracket{Lower: 300_000, Upper: 600_000, Rate: 0.05},
	Bracket{Lower: 600_000, Upper: 900_000, Rate: 0.10},
	Bracket{Lower: 900_000, Upper: 1_200_000, Rate: 0.15},
	Bracket{Lower: 1_200_000, Upper: 1_500_000, Rate: 0.20},
	Bracket{Lower: 1_500_000, Upper: inf, Rate: 0.30},
)
