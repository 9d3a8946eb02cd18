package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseKind determines whether an expense is shared by the household
// or belongs to a single person.
type ExpenseKind string

const (
	KindHousehold ExpenseKind = "household"
	KindPersonal  ExpenseKind = "personal"
)

// Valid reports whether the kind is a known expense kind.
func (k ExpenseKind) Valid() bool {
	return k == KindHousehold || k == KindPersonal
}

// Expense is a recurring or one-time cost within a budget.
//
// PersonID is a plain column, not a foreign key: a personal expense may
// reference a person that no longer exists and is then treated as
// unassigned by the calculation engine.
type Expense struct {
	DefaultModel
	Budget      Budget     `json:"-"`
	BudgetID    uuid.UUID  `gorm:"index"`
	PersonID    *uuid.UUID `gorm:"index"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind        ExpenseKind
	Frequency   types.Frequency
	Date        types.Date
	EndDate     *types.Date
	CategoryTag string
	Note        string
}

var (
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrExpenseKindInvalid       = errors.New("the expense must be either a household or a personal expense")
	ErrEndDateBeforeStart       = errors.New("the end date must be on or after the start date")
	ErrEndDateOneTime           = errors.New("one-time expenses cannot have an end date")
)

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Note = strings.TrimSpace(e.Note)
	e.CategoryTag = strings.TrimSpace(e.CategoryTag)

	if e.CategoryTag == "" {
		e.CategoryTag = DefaultCategoryTag
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	// Column updates pass a map as Dest, those never change the budget
	toSave, ok := tx.Statement.Dest.(Expense)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("BudgetID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	if !e.Kind.Valid() {
		return ErrExpenseKindInvalid
	}

	if !e.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if e.EndDate != nil {
		if e.Frequency == types.FrequencyOneTime {
			return ErrEndDateOneTime
		}

		if e.EndDate.Before(e.Date) {
			return ErrEndDateBeforeStart
		}
	}

	return nil
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
