package calc

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// KindFilter narrows an expense list to one kind of expense.
type KindFilter string

const (
	FilterAll       KindFilter = "all"
	FilterHousehold KindFilter = "household"
	FilterPersonal  KindFilter = "personal"
)

// Preferences describe how an expense list is narrowed down. Empty
// fields do not filter. All set fields must match at once.
type Preferences struct {
	Filter       KindFilter `json:"filter" example:"personal"`
	PersonFilter *uuid.UUID `json:"personFilter" example:"b1f4f4f4-2c1a-4c4e-9a5c-0d5e2e3f4a5b"`
	Category     string     `json:"category" example:"Groceries"`
	Search       string     `json:"search" example:"stream*"`
	HasEndDate   bool       `json:"hasEndDate" example:"true"`
}

// Match reports whether a single expense passes all set filters. The
// search term matches case insensitively against the description and
// supports * wildcards.
func (p Preferences) Match(expense models.Expense) bool {
	switch p.Filter {
	case FilterHousehold:
		if expense.Kind != models.KindHousehold {
			return false
		}
	case FilterPersonal:
		if expense.Kind != models.KindPersonal {
			return false
		}
	}

	if p.PersonFilter != nil {
		if expense.PersonID == nil || *expense.PersonID != *p.PersonFilter {
			return false
		}
	}

	if p.Category != "" && expense.CategoryTag != p.Category {
		return false
	}

	if p.Search != "" {
		search := strings.ToLower(p.Search)
		if !strings.Contains(search, "*") {
			search = "*" + search + "*"
		}
		if !glob.Glob(search, strings.ToLower(expense.Description)) {
			return false
		}
	}

	if p.HasEndDate && expense.EndDate == nil {
		return false
	}

	return true
}

// FilterExpenses returns the expenses passing the preferences, in the
// order they were given.
func FilterExpenses(expenses []models.Expense, prefs Preferences) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if prefs.Match(expense) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// SortField selects the attribute an expense list is ordered by.
type SortField string

const (
	SortDate         SortField = "date"
	SortAlphabetical SortField = "alphabetical"
	SortCost         SortField = "cost"
)

// SortOrder selects the direction an expense list is ordered in.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// SortExpenses orders the expenses by the given field and direction, in
// place. The sort is stable, so expenses that compare equal keep their
// relative order in both directions. Cost compares the raw amount
// without frequency normalization. Unknown fields leave the order
// untouched, any order other than descending sorts ascending.
func SortExpenses(expenses []models.Expense, field SortField, order SortOrder) {
	var less func(i, j int) bool

	switch field {
	case SortDate:
		less = func(i, j int) bool {
			return expenses[i].Date.Before(expenses[j].Date)
		}
	case SortAlphabetical:
		less = func(i, j int) bool {
			return strings.ToLower(expenses[i].Description) < strings.ToLower(expenses[j].Description)
		}
	case SortCost:
		less = func(i, j int) bool {
			return expenses[i].Amount.LessThan(expenses[j].Amount)
		}
	default:
		return
	}

	if order == OrderDescending {
		ascending := less
		less = func(i, j int) bool {
			return ascending(j, i)
		}
	}

	sort.SliceStable(expenses, less)
}
