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

// Income is a single income source of a person.
type Income struct {
	DefaultModel
	Person    Person    `json:"-"`
	PersonID  uuid.UUID `gorm:"index"`
	Label     string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency types.Frequency
}

var (
	ErrIncomeAmountNotPositive = errors.New("income amounts must be larger than zero")
	ErrFrequencyInvalid        = errors.New("the specified frequency is not a valid recurrence")
)

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Label = strings.TrimSpace(i.Label)

	return nil
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Income)
	return i.checkIntegrity(tx, *toSave)
}

func (i *Income) BeforeUpdate(tx *gorm.DB) error {
	// Column updates pass a map as Dest, those never change the person
	toSave, ok := tx.Statement.Dest.(Income)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("PersonID") {
		err := i.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (i *Income) checkIntegrity(tx *gorm.DB, toSave Income) error {
	return tx.First(&Person{}, toSave.PersonID).Error
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(i.Amount) {
		return ErrIncomeAmountNotPositive
	}

	if !i.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	return nil
}

// Returns all incomes on this instance for export
func (Income) Export() (json.RawMessage, error) {
	var incomes []Income
	err := DB.Unscoped().Where(&Income{}).Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&incomes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
