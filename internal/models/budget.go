package models

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget represents a named household budget.
//
// A budget is the highest level of organization, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 code used for display, e.g. "EUR"
	Active   bool   // Whether this is the currently selected budget
}

var ErrBudgetCurrencyInvalid = errors.New("the budget currency must be a valid ISO 4217 code")

// BeforeSave trims whitespace and verifies the currency code.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Currency != "" {
		if _, err := currency.ParseISO(b.Currency); err != nil {
			return ErrBudgetCurrencyInvalid
		}
	}

	return nil
}

// Activate marks this budget as the active one. Exactly one budget
// can be active at a time, so the flag is cleared everywhere else.
func (b *Budget) Activate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Budget{}).Where("active = ?", true).Update("active", false).Error
		if err != nil {
			return err
		}

		return tx.Model(b).Update("active", true).Error
	})
}

// AfterDelete removes everything the budget owns. Incomes hang off
// people rather than the budget, so they are collected through the
// people first.
func (b *Budget) AfterDelete(tx *gorm.DB) error {
	var people []Person
	err := tx.Where(&Person{BudgetID: b.ID}).Find(&people).Error
	if err != nil {
		return err
	}

	for _, person := range people {
		err = tx.Where(&Income{PersonID: person.ID}).Delete(&Income{}).Error
		if err != nil {
			return err
		}
	}

	// The per-person cleanup hook is redundant here, everything it
	// touches is removed at budget scope anyway.
	session := tx.Session(&gorm.Session{SkipHooks: true})
	for _, model := range []any{
		Expense{},
		DistributionWeight{},
		HouseholdSettings{},
		MatchRule{},
		CategoryTag{},
		Person{},
	} {
		err = session.Where("budget_id = ?", b.ID).Delete(&model).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// People returns all people for this budget.
func (b Budget) People(db *gorm.DB) ([]Person, error) {
	var people []Person
	err := db.Where(&Person{BudgetID: b.ID}).Order("name ASC").Find(&people).Error
	return people, err
}

// Expenses returns all expenses for this budget.
func (b Budget) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(&Expense{BudgetID: b.ID}).Find(&expenses).Error
	return expenses, err
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
