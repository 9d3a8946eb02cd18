package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
)

type BudgetEditable struct {
	Name     string `json:"name" example:"Our household" default:""`             // Name of the budget
	Note     string `json:"note" example:"The shared budget for the flat" default:""` // A longer description
	Currency string `json:"currency" example:"EUR" default:""`                   // ISO 4217 code of the currency used for display
	Active   bool   `json:"active" example:"true" default:"false"`               // Whether this is the currently selected budget
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Active:   editable.Active,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // The budget itself
	People   string `json:"people" example:"https://example.com/api/v1/people?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // The people of this budget
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The expenses of this budget
	Settings string `json:"settings" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/settings"` // The household settings of this budget
	Summary  string `json:"summary" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/summary"`   // The calculated summary of this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Active:   model.Active,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			People:   fmt.Sprintf("%s/v1/people?budget=%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?budget=%s", url, model.ID),
			Settings: fmt.Sprintf("%s/v1/budgets/%s/settings", url, model.ID),
			Summary:  fmt.Sprintf("%s/v1/budgets/%s/summary", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created resources
}

func (t *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The resource
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By the note
	Currency string `form:"currency"`                   // By the currency code
	Active   bool   `form:"active"`                     // Is the budget the currently selected one?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Budget{
		Currency: f.Currency,
		Active:   f.Active,
	}
}
