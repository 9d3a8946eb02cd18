package models

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DistributionMethod is the policy for splitting household expense
// totals among the people of a budget.
type DistributionMethod string

const (
	DistributionEven               DistributionMethod = "even"
	DistributionIncomeProportional DistributionMethod = "income-proportional"
	DistributionCustom             DistributionMethod = "custom"
)

// Valid reports whether the method is a known distribution policy.
func (m DistributionMethod) Valid() bool {
	switch m {
	case DistributionEven, DistributionIncomeProportional, DistributionCustom:
		return true
	}

	return false
}

// HouseholdSettings configures how household expenses are distributed.
// There is exactly one settings resource per budget, created on demand.
type HouseholdSettings struct {
	DefaultModel
	Budget             Budget    `json:"-"`
	BudgetID           uuid.UUID `gorm:"uniqueIndex"`
	DistributionMethod DistributionMethod
}

// DistributionWeight is the custom weight of one person for the
// "custom" distribution method. People without a weight default to 1.
type DistributionWeight struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:weight_budget_id_person_id"`
	PersonID uuid.UUID `gorm:"uniqueIndex:weight_budget_id_person_id"`
	Weight   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrDistributionMethodInvalid = errors.New("the specified distribution method is invalid")
	ErrWeightNegative            = errors.New("distribution weights must not be negative")
	ErrSettingsExist             = errors.New("the budget already has household settings")
	ErrWeightExists              = errors.New("the person already has a distribution weight")
)

// SettingsForBudget returns the household settings for a budget,
// creating them with the default method if they do not exist yet.
func SettingsForBudget(db *gorm.DB, budgetID uuid.UUID) (HouseholdSettings, error) {
	var settings HouseholdSettings

	err := db.Where(&HouseholdSettings{BudgetID: budgetID}).First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return HouseholdSettings{}, err
	}

	// Verify the budget exists before creating settings for it
	err = db.First(&Budget{}, budgetID).Error
	if err != nil {
		return HouseholdSettings{}, err
	}

	settings = HouseholdSettings{
		BudgetID:           budgetID,
		DistributionMethod: DistributionEven,
	}

	err = db.Create(&settings).Error
	return settings, err
}

func (s *HouseholdSettings) AfterSave(_ *gorm.DB) error {
	if !s.DistributionMethod.Valid() {
		return ErrDistributionMethodInvalid
	}

	return nil
}

func (w *DistributionWeight) BeforeCreate(tx *gorm.DB) error {
	_ = w.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*DistributionWeight)
	return tx.First(&Person{}, toSave.PersonID).Error
}

func (w *DistributionWeight) AfterSave(_ *gorm.DB) error {
	if w.Weight.IsNegative() {
		return ErrWeightNegative
	}

	return nil
}

// Weights returns the custom weights of a budget keyed by person ID.
func (s HouseholdSettings) Weights(db *gorm.DB) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []DistributionWeight
	err := db.Where(&DistributionWeight{BudgetID: s.BudgetID}).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	weights := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		weights[row.PersonID] = row.Weight
	}

	return weights, nil
}

// Returns all household settings on this instance for export
func (HouseholdSettings) Export() (json.RawMessage, error) {
	var settings []HouseholdSettings
	err := DB.Unscoped().Where(&HouseholdSettings{}).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// Returns all distribution weights on this instance for export
func (DistributionWeight) Export() (json.RawMessage, error) {
	var weights []DistributionWeight
	err := DB.Unscoped().Where(&DistributionWeight{}).Find(&weights).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&weights)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
