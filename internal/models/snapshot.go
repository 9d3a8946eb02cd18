package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PersonSnapshot is a person together with their income sources.
type PersonSnapshot struct {
	Person
	Incomes []Income `json:"incomes"`
}

// BudgetSnapshot is the immutable in-memory state of one budget that the
// calculation engine consumes. The engine never reads the database itself,
// it only ever sees a snapshot.
type BudgetSnapshot struct {
	Budget   Budget
	People   []PersonSnapshot
	Expenses []Expense
	Method   DistributionMethod
	Weights  map[uuid.UUID]decimal.Decimal
}

// Snapshot loads the full state of the budget: people with their incomes,
// all expenses, and the household settings with custom weights.
func (b Budget) Snapshot(db *gorm.DB) (*BudgetSnapshot, error) {
	people, err := b.People(db)
	if err != nil {
		return nil, err
	}

	snapshot := BudgetSnapshot{
		Budget: b,
		People: make([]PersonSnapshot, 0, len(people)),
	}

	for _, person := range people {
		incomes, err := person.Incomes(db)
		if err != nil {
			return nil, err
		}

		snapshot.People = append(snapshot.People, PersonSnapshot{Person: person, Incomes: incomes})
	}

	snapshot.Expenses, err = b.Expenses(db)
	if err != nil {
		return nil, err
	}

	settings, err := SettingsForBudget(db, b.ID)
	if err != nil {
		return nil, err
	}
	snapshot.Method = settings.DistributionMethod

	snapshot.Weights, err = settings.Weights(db)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
