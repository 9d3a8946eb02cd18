package types

// Frequency is the recurrence cadence of an amount.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyOneTime Frequency = "one-time"
)

// Frequencies lists all valid frequencies.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly, FrequencyOneTime}
}

// Valid reports whether the frequency is one of the known recurrence cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly, FrequencyOneTime:
		return true
	}

	return false
}

// Recurring reports whether the frequency describes a recurring amount.
func (f Frequency) Recurring() bool {
	return f.Valid() && f != FrequencyOneTime
}

func (f Frequency) String() string {
	return string(f)
}
