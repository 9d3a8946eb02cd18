package calc

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary aggregates a budget's income and spending. All amounts share
// the same view scale.
type Summary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome" example:"5200"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses" example:"3150.5"`
	HouseholdExpenses decimal.Decimal `json:"householdExpenses" example:"2100"`
	PersonalExpenses  decimal.Decimal `json:"personalExpenses" example:"1050.5"`
	Remaining         decimal.Decimal `json:"remaining" example:"2049.5"`
}

// PersonBreakdown shows one person's position within the budget. The
// remaining amount is their income minus their personal expenses and
// their share of the household expenses.
type PersonBreakdown struct {
	PersonID         uuid.UUID       `json:"personId" example:"b1f4f4f4-2c1a-4c4e-9a5c-0d5e2e3f4a5b"`
	Name             string          `json:"name" example:"Morgan"`
	Income           decimal.Decimal `json:"income" example:"2600"`
	PersonalExpenses decimal.Decimal `json:"personalExpenses" example:"420"`
	HouseholdShare   decimal.Decimal `json:"householdShare" example:"1050"`
	Remaining        decimal.Decimal `json:"remaining" example:"1130"`
}

// ComputeSummary builds the budget summary for the snapshot on the
// given date, scaled to the requested view. Remaining can be negative
// when the budget overspends.
func ComputeSummary(snapshot *models.BudgetSnapshot, asOf types.Date, mode ViewMode) (Summary, error) {
	if snapshot == nil {
		return Summary{}, ErrInvalidSnapshot
	}

	income, err := TotalIncomeAnnual(snapshot.People)
	if err != nil {
		return Summary{}, err
	}

	household, err := HouseholdExpensesAnnual(snapshot.Expenses, asOf)
	if err != nil {
		return Summary{}, err
	}

	personal, err := AllPersonalExpensesAnnual(snapshot.Expenses, asOf)
	if err != nil {
		return Summary{}, err
	}

	total := household.Add(personal)

	return Summary{
		TotalIncome:       scale(income, mode),
		TotalExpenses:     scale(total, mode),
		HouseholdExpenses: scale(household, mode),
		PersonalExpenses:  scale(personal, mode),
		Remaining:         scale(income.Sub(total), mode),
	}, nil
}

// ComputeBreakdowns builds the per-person breakdown for every person
// in the snapshot, in snapshot order, scaled to the requested view.
func ComputeBreakdowns(snapshot *models.BudgetSnapshot, asOf types.Date, mode ViewMode) ([]PersonBreakdown, error) {
	if snapshot == nil {
		return nil, ErrInvalidSnapshot
	}

	household, err := HouseholdExpensesAnnual(snapshot.Expenses, asOf)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]PersonBreakdown, 0, len(snapshot.People))
	for _, person := range snapshot.People {
		income, err := PersonIncomeAnnual(person)
		if err != nil {
			return nil, err
		}

		personal, err := PersonalExpensesAnnual(snapshot.Expenses, person.ID, asOf)
		if err != nil {
			return nil, err
		}

		share, err := HouseholdShare(household, snapshot.People, snapshot.Method, person.ID, snapshot.Weights)
		if err != nil {
			return nil, err
		}

		breakdowns = append(breakdowns, PersonBreakdown{
			PersonID:         person.ID,
			Name:             person.Name,
			Income:           scale(income, mode),
			PersonalExpenses: scale(personal, mode),
			HouseholdShare:   scale(share, mode),
			Remaining:        scale(income.Sub(personal).Sub(share), mode),
		})
	}

	return breakdowns, nil
}
