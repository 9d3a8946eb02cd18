package calc

import (
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
)

// ExpiringWindowDays is the number of days before an end date during
// which an expense counts as expiring soon.
const ExpiringWindowDays = 7

// Status describes where an expense is in its lifecycle relative to a
// reference date.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring-soon"
	StatusEnded        Status = "ended"
)

// IsActive reports whether the expense still contributes to totals on
// the given date. Expenses without an end date never end, and one-time
// expenses stay active regardless of any date.
func IsActive(expense models.Expense, asOf types.Date) bool {
	if expense.Frequency == types.FrequencyOneTime {
		return true
	}
	if expense.EndDate == nil {
		return true
	}

	return !expense.EndDate.Before(asOf)
}

// DaysUntil returns the number of whole calendar days from asOf to the
// expense's end date. Negative values mean the end date has passed.
// Expenses without an end date report a false second return value.
func DaysUntil(expense models.Expense, asOf types.Date) (int, bool) {
	if expense.EndDate == nil {
		return 0, false
	}

	return asOf.DaysUntil(*expense.EndDate), true
}

// Classify determines the lifecycle status of an expense on the given
// date. An end date matching asOf exactly counts as expiring soon since
// the expense is still active on that day.
func Classify(expense models.Expense, asOf types.Date) Status {
	if !IsActive(expense, asOf) {
		return StatusEnded
	}
	if expense.Frequency == types.FrequencyOneTime {
		return StatusActive
	}

	days, ok := DaysUntil(expense, asOf)
	if ok && days >= 0 && days <= ExpiringWindowDays {
		return StatusExpiringSoon
	}

	return StatusActive
}

// EndingSoon partitions the expenses with an end date into those
// expiring within the window and those already ended, each ordered as
// given. Expenses without an end date appear in neither slice.
func EndingSoon(expenses []models.Expense, asOf types.Date) (expiring, ended []models.Expense) {
	for _, expense := range expenses {
		switch Classify(expense, asOf) {
		case StatusExpiringSoon:
			expiring = append(expiring, expense)
		case StatusEnded:
			ended = append(ended, expense)
		}
	}

	return expiring, ended
}
