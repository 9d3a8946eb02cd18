package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person is a household member with their own income sources.
type Person struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:person_name_budget_id"`
	Name     string    `gorm:"uniqueIndex:person_name_budget_id"`
	Note     string
}

var ErrPersonNameNotUnique = errors.New("the person name must be unique for the budget")

func (p *Person) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Person)
	return p.checkIntegrity(tx, *toSave)
}

func (p *Person) BeforeUpdate(tx *gorm.DB) error {
	// Column updates pass a map as Dest, those never change the budget
	toSave, ok := tx.Statement.Dest.(Person)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("BudgetID") {
		err := p.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (p *Person) checkIntegrity(tx *gorm.DB, toSave Person) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// AfterDelete cleans up everything that references the person.
//
// Personal expenses are kept and become unassigned, matching the deletion
// semantics of the app: removing a person must never silently delete
// spending data. Incomes and the distribution weight belong to the person
// and go with them.
func (p *Person) AfterDelete(tx *gorm.DB) error {
	err := tx.Model(&Expense{}).
		Where("person_id = ?", p.ID).
		Update("person_id", nil).Error
	if err != nil {
		return err
	}

	err = tx.Where(&Income{PersonID: p.ID}).Delete(&Income{}).Error
	if err != nil {
		return err
	}

	return tx.Where(&DistributionWeight{PersonID: p.ID}).Delete(&DistributionWeight{}).Error
}

// Incomes returns all income sources for this person.
func (p Person) Incomes(db *gorm.DB) ([]Income, error) {
	var incomes []Income
	err := db.Where(&Income{PersonID: p.ID}).Order("label ASC").Find(&incomes).Error
	return incomes, err
}

// Returns all people on this instance for export
func (Person) Export() (json.RawMessage, error) {
	var people []Person
	err := DB.Unscoped().Where(&Person{}).Find(&people).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&people)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
