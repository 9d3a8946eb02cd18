package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryTag is assigned to expenses without an explicit tag.
const DefaultCategoryTag = "Misc"

// DefaultCategoryTags are the built-in tags every budget starts with.
// Custom tags are stored as CategoryTag resources next to them.
func DefaultCategoryTags() []string {
	return []string{"Rent", "Groceries", "Utilities", "Transport", "Subscriptions", "Insurance", DefaultCategoryTag}
}

// CategoryTag is a user-defined expense tag for one budget.
type CategoryTag struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:tag_name_budget_id"`
	Name     string    `gorm:"uniqueIndex:tag_name_budget_id"`
}

var (
	ErrCategoryTagNotUnique = errors.New("the category tag name must be unique for the budget")
	ErrCategoryTagEmpty     = errors.New("the category tag name must not be empty")
)

func (t *CategoryTag) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)

	if t.Name == "" {
		return ErrCategoryTagEmpty
	}

	return nil
}

func (t *CategoryTag) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryTag)
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// TagsForBudget returns the default tags plus the budget's custom tags.
func TagsForBudget(db *gorm.DB, budgetID uuid.UUID) ([]string, error) {
	var custom []CategoryTag
	err := db.Where(&CategoryTag{BudgetID: budgetID}).Order("name ASC").Find(&custom).Error
	if err != nil {
		return nil, err
	}

	tags := DefaultCategoryTags()
	for _, tag := range custom {
		tags = append(tags, tag.Name)
	}

	return tags, nil
}

// Returns all category tags on this instance for export
func (CategoryTag) Export() (json.RawMessage, error) {
	var tags []CategoryTag
	err := DB.Unscoped().Where(&CategoryTag{}).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&tags)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
