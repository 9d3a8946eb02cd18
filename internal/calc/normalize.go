// Package calc implements the budget calculation engine. All functions
// operate on plain values and snapshot structs, never on the database,
// so every result is reproducible from its inputs alone.
package calc

import (
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)

	// daysPerMonth is the average Gregorian month length used for the
	// daily view. The summary must round-trip between views, therefore
	// the constant is exact, not a per-month calendar lookup.
	daysPerMonth = decimal.NewFromFloat(30.44)
)

var annualFactors = map[types.Frequency]decimal.Decimal{
	types.FrequencyDaily:   decimal.NewFromInt(365),
	types.FrequencyWeekly:  decimal.NewFromInt(52),
	types.FrequencyMonthly: decimal.NewFromInt(12),
	types.FrequencyYearly:  decimal.NewFromInt(1),
	types.FrequencyOneTime: decimal.NewFromInt(1),
}

// Annual converts an amount with a recurrence frequency to its total
// per year. One-time amounts count once.
func Annual(amount decimal.Decimal, frequency types.Frequency) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	factor, ok := annualFactors[frequency]
	if !ok {
		return decimal.Zero, ErrUnknownFrequency
	}

	return amount.Mul(factor), nil
}

// Monthly converts an amount with a recurrence frequency to its total
// per month, derived from the annual total.
func Monthly(amount decimal.Decimal, frequency types.Frequency) (decimal.Decimal, error) {
	annual, err := Annual(amount, frequency)
	if err != nil {
		return decimal.Zero, err
	}

	return annual.Div(monthsPerYear), nil
}

// ViewMode selects the time scale summary amounts are reported in.
type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewMonthly ViewMode = "monthly"
	ViewYearly  ViewMode = "yearly"
)

// Valid reports whether the view mode is one of the supported scales.
func (v ViewMode) Valid() bool {
	return v == ViewDaily || v == ViewMonthly || v == ViewYearly
}

// ViewModes returns all supported view modes.
func ViewModes() []ViewMode {
	return []ViewMode{ViewDaily, ViewMonthly, ViewYearly}
}

// scale converts an annual amount into the requested view. Unknown
// modes fall back to yearly.
func scale(annual decimal.Decimal, mode ViewMode) decimal.Decimal {
	switch mode {
	case ViewDaily:
		return annual.Div(monthsPerYear).Div(daysPerMonth)
	case ViewMonthly:
		return annual.Div(monthsPerYear)
	default:
		return annual
	}
}
