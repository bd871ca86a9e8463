package compound

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/shopspring/decimal"
)

// Projection is the outcome of compounding an Input.
type Projection struct {
	Input

	// RatePerPeriod is the growth factor applied each period, scaled by Scale.
	RatePerPeriod uint64
	// Periods is the total number of compounding periods.
	Periods uint64
	// Multiplier is RatePerPeriod^Periods, scaled by Scale and truncated at every step.
	Multiplier uint64
	// Final is the principal grown by Multiplier.
	Final Cents
}

// Project compounds the principal of in over its whole duration.
//
// The rate is converted to the multiplier scale first: with a Scale of 100 only
// whole percents are representable, so 5.25% grows like 5%.
func Project(in Input) (p Projection, err error) {
	p.Input = in
	p.RatePerPeriod = Scale + in.Rate.Percent()
	p.Periods = in.Frequency.PeriodsPerYear() * uint64(in.Years)

	p.Multiplier, err = ScaledPow(p.RatePerPeriod, p.Periods)
	if err != nil {
		return p, fmt.Errorf("growth multiplier over %d periods: %w", p.Periods, err)
	}

	hi, lo := bits.Mul64(uint64(in.Principal), p.Multiplier)
	if hi >= Scale {
		return p, fmt.Errorf("applying a multiplier of %d to %s: %w", p.Multiplier, in.Principal, ErrOverflow)
	}
	final, _ := bits.Div64(hi, lo, Scale)
	p.Final = Cents(final)
	return p, nil
}

// MaxScheduleYears bounds the number of rows a schedule can hold.
const MaxScheduleYears = 1000

// Schedule returns the projection at the end of every year of in, first year first.
// The last item is Project(in).
func Schedule(in Input) ([]Projection, error) {
	if in.Years > MaxScheduleYears {
		return nil, fmt.Errorf("schedule over %d years exceeds the %d years limit", in.Years, MaxScheduleYears)
	}
	rows := make([]Projection, 0, in.Years)
	for y := Years(1); y <= in.Years; y++ {
		year := in
		year.Years = y
		p, err := Project(year)
		if err != nil {
			return rows, fmt.Errorf("year %d: %w", y, err)
		}
		rows = append(rows, p)
	}
	return rows, nil
}

// exactPlaces is the number of decimal places kept by Exact between multiplications.
const exactPlaces = 18

// MaxExactPeriods bounds the periods Exact accepts, the integer digits of the
// result grow linearly with them.
const MaxExactPeriods = 100_000

// Exact returns the final amount computed without truncation: the principal
// grown by (1 + rate) per period, rounded to the cent.
// The difference with Final measures the drift of the fixed-point computation.
func (p Projection) Exact() (decimal.Decimal, error) {
	if p.Periods > MaxExactPeriods {
		return decimal.Zero, fmt.Errorf("exact amount over %d periods exceeds the %d periods limit", p.Periods, MaxExactPeriods)
	}
	growth := decimal.NewFromInt(1).Add(p.Rate.Decimal())
	return p.Principal.Decimal().Mul(decimalPow(growth, p.Periods)).Round(2), nil
}

// Drift returns Exact minus Final.
func (p Projection) Drift() (decimal.Decimal, error) {
	exact, err := p.Exact()
	if err != nil {
		return exact, err
	}
	return exact.Sub(p.Final.Decimal()), nil
}

// decimalPow raises base to exp by squaring, rounding to exactPlaces on each step.
func decimalPow(base decimal.Decimal, exp uint64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(exactPlaces)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base).Round(exactPlaces)
		}
	}
	return result
}

// MarshalJSON writes the input fields followed by the computed ones.
// The exact amount is omitted when it is out of reach.
func (p Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.Input)
	w.Append("ratePerPeriod", p.RatePerPeriod)
	w.Append("periods", p.Periods)
	w.Append("multiplier", p.Multiplier)
	w.Append("final", p.Final)
	if exact, err := p.Exact(); err == nil {
		w.Append("exact", json.Number(exact.StringFixed(2)))
	}
	return w.MarshalJSON()
}
