package calc

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PersonIncomeAnnual sums all income sources of a person as annual
// amounts.
func PersonIncomeAnnual(person models.PersonSnapshot) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, income := range person.Incomes {
		annual, err := Annual(income.Amount, income.Frequency)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(annual)
	}

	return sum, nil
}

// TotalIncomeAnnual sums the annual income of all people in the
// snapshot.
func TotalIncomeAnnual(people []models.PersonSnapshot) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, person := range people {
		income, err := PersonIncomeAnnual(person)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(income)
	}

	return sum, nil
}

// PersonalExpensesAnnual sums the active personal expenses assigned to
// a specific person as annual amounts.
func PersonalExpensesAnnual(expenses []models.Expense, personID uuid.UUID, asOf types.Date) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range expenses {
		if expense.Kind != models.KindPersonal || !IsActive(expense, asOf) {
			continue
		}
		if expense.PersonID == nil || *expense.PersonID != personID {
			continue
		}

		annual, err := Annual(expense.Amount, expense.Frequency)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(annual)
	}

	return sum, nil
}

// AllPersonalExpensesAnnual sums every active personal expense as an
// annual amount, assigned or not.
func AllPersonalExpensesAnnual(expenses []models.Expense, asOf types.Date) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range expenses {
		if expense.Kind != models.KindPersonal || !IsActive(expense, asOf) {
			continue
		}

		annual, err := Annual(expense.Amount, expense.Frequency)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(annual)
	}

	return sum, nil
}

// UnassignedExpensesAnnual sums active personal expenses whose person
// reference is empty or does not match anyone in the snapshot. Those
// count toward totals, but toward no individual breakdown.
func UnassignedExpensesAnnual(expenses []models.Expense, people []models.PersonSnapshot, asOf types.Date) (decimal.Decimal, error) {
	known := make(map[uuid.UUID]bool, len(people))
	for _, person := range people {
		known[person.ID] = true
	}

	sum := decimal.Zero
	for _, expense := range expenses {
		if expense.Kind != models.KindPersonal || !IsActive(expense, asOf) {
			continue
		}
		if expense.PersonID != nil && known[*expense.PersonID] {
			continue
		}

		annual, err := Annual(expense.Amount, expense.Frequency)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(annual)
	}

	return sum, nil
}

// HouseholdExpensesAnnual sums all active household expenses as annual
// amounts.
func HouseholdExpensesAnnual(expenses []models.Expense, asOf types.Date) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range expenses {
		if expense.Kind != models.KindHousehold || !IsActive(expense, asOf) {
			continue
		}

		annual, err := Annual(expense.Amount, expense.Frequency)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(annual)
	}

	return sum, nil
}
