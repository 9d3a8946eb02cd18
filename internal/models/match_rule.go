package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule automatically assigns a category tag to expenses whose
// description matches a glob pattern, e.g. "Netflix*" -> "Subscriptions".
type MatchRule struct {
	DefaultModel
	Budget      Budget    `json:"-"`
	BudgetID    uuid.UUID `gorm:"index"`
	Priority    uint
	Match       string
	CategoryTag string
}

var ErrMatchRuleEmpty = errors.New("the match pattern must not be empty")

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.CategoryTag = strings.TrimSpace(r.CategoryTag)

	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// Matches reports whether the rule matches the description.
// Matching is case insensitive since descriptions are free text.
func (r MatchRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(description))
}

// TagForDescription runs all match rules of a budget against a
// description. The first matching rule by ascending priority wins.
// An empty string is returned when no rule matches.
func TagForDescription(db *gorm.DB, budgetID uuid.UUID, description string) (string, error) {
	var rules []MatchRule
	err := db.Where(&MatchRule{BudgetID: budgetID}).Order("priority ASC").Find(&rules).Error
	if err != nil {
		return "", err
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			return rule.CategoryTag, nil
		}
	}

	return "", nil
}

// Returns all match rules on this instance for export
func (MatchRule) Export() (json.RawMessage, error) {
	var rules []MatchRule
	err := DB.Unscoped().Where(&MatchRule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
