package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type MatchRuleEditable struct {
	BudgetID    uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this rule belongs to
	Priority    uint      `json:"priority" example:"1" default:"0"`                        // The priority of the rule. Rules with lower numbers are applied first.
	Match       string    `json:"match" example:"Netflix*" default:""`                     // The glob pattern matched against expense descriptions, case insensitive
	CategoryTag string    `json:"categoryTag" example:"Subscriptions" default:""`          // The tag to apply when the pattern matches
}

// model returns the database resource for the API representation of the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		BudgetID:    editable.BudgetID,
		Priority:    editable.Priority,
		Match:       editable.Match,
		CategoryTag: editable.CategoryTag,
	}
}

type MatchRuleLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // The budget this rule belongs to
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

// newMatchRule returns the API v1 representation of the resource
func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			BudgetID:    model.BudgetID,
			Priority:    model.Priority,
			Match:       model.Match,
			CategoryTag: model.CategoryTag,
		},
		Links: MatchRuleLinks{
			Self:   fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created resources
}

func (t *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MatchRule `json:"data"`                                                          // The resource
}

type MatchRuleQueryFilter struct {
	BudgetID    hs_uuid.UUID `form:"budget"`                     // By budget ID
	Priority    uint         `form:"priority"`                   // By priority
	Match       string       `form:"match" filterField:"false"`  // By match pattern
	CategoryTag string       `form:"categoryTag"`                // By the tag the rule applies
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first rule returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	// This does not set the match pattern since it is
	// handled in the controller function
	return models.MatchRule{
		BudgetID:    f.BudgetID.UUID,
		Priority:    f.Priority,
		CategoryTag: f.CategoryTag,
	}
}
