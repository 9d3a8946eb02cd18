package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/calc"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	BudgetID    uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                       // ID of the budget this expense belongs to
	PersonID    *uuid.UUID         `json:"personId" example:"d0851226-9c4e-4dc9-a071-facf5dda7a25"`                                                       // ID of the person a personal expense is assigned to. Can be empty.
	Description string             `json:"description" example:"Rent" default:""`                                                                         // What the expense is for
	Amount      decimal.Decimal    `json:"amount" example:"1200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount of the expense per recurrence
	Kind        models.ExpenseKind `json:"kind" example:"household" default:"household"`                                                                  // Whether the expense is shared or personal
	Frequency   types.Frequency    `json:"frequency" example:"monthly" default:"monthly"`                                                                 // How often the expense recurs
	Date        types.Date         `json:"date" example:"2026-01-01"`                                                                                     // The date the expense starts
	EndDate     *types.Date        `json:"endDate" example:"2026-12-31"`                                                                                  // The date the expense ends. Can be empty.
	CategoryTag string             `json:"categoryTag" example:"Rent" default:""`                                                                         // The category tag. Defaults via match rules, then to "Misc".
	Note        string             `json:"note" example:"Rises with the next contract" default:""`                                                        // A longer description
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		BudgetID:    editable.BudgetID,
		PersonID:    editable.PersonID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Kind:        editable.Kind,
		Frequency:   editable.Frequency,
		Date:        editable.Date,
		EndDate:     editable.EndDate,
		CategoryTag: editable.CategoryTag,
		Note:        editable.Note,
	}
}

type ExpenseLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/expenses/6b40ad33-f546-4a84-980e-eefc21b78114"` // The expense itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget this expense belongs to
	Person string `json:"person,omitempty" example:"https://example.com/api/v1/people/d0851226-9c4e-4dc9-a071-facf5dda7a25"` // The person this expense is assigned to. Empty for household and unassigned expenses.
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Status       calc.Status  `json:"status" example:"active"`     // Lifecycle status relative to the asOf date
	DaysUntilEnd *int         `json:"daysUntilEnd" example:"5"`    // Days until the end date. Empty when there is no end date.
	Links        ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense, asOf types.Date) Expense {
	url := c.GetString(string(models.DBContextURL))

	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			BudgetID:    model.BudgetID,
			PersonID:    model.PersonID,
			Description: model.Description,
			Amount:      model.Amount,
			Kind:        model.Kind,
			Frequency:   model.Frequency,
			Date:        model.Date,
			EndDate:     model.EndDate,
			CategoryTag: model.CategoryTag,
			Note:        model.Note,
		},
		Status: calc.Classify(model, asOf),
		Links: ExpenseLinks{
			Self:   fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}

	if days, ok := calc.DaysUntil(model, asOf); ok {
		expense.DaysUntilEnd = &days
	}

	if model.PersonID != nil {
		expense.Links.Person = fmt.Sprintf("%s/v1/people/%s", url, model.PersonID)
	}

	return expense
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	BudgetID    hs_uuid.UUID    `form:"budget"`                         // By budget ID
	PersonID    hs_uuid.UUID    `form:"person"`                         // By the person a personal expense is assigned to
	Kind        string          `form:"kind"`                           // household or personal
	Frequency   string          `form:"frequency"`                      // By recurrence frequency
	CategoryTag string          `form:"categoryTag"`                    // By category tag
	Amount      decimal.Decimal `form:"amount"`                         // Exact amount
	Description string          `form:"description" filterField:"false"` // By description
	Note        string          `form:"note" filterField:"false"`       // By the note
	Search      string          `form:"search" filterField:"false"`     // By glob pattern in the description, case insensitive
	HasEndDate  bool            `form:"hasEndDate" filterField:"false"` // Only expenses with an end date
	Status      string          `form:"status" filterField:"false"`     // By lifecycle status: active, expiring-soon or ended
	AsOf        string          `form:"asOf" filterField:"false"`       // Reference date for the lifecycle status in YYYY-MM-DD format. Defaults to today.
	Sort        string          `form:"sort" filterField:"false"`       // Sort by date, alphabetical or cost. Defaults to date.
	Order       string          `form:"order" filterField:"false"`      // Sort direction, asc or desc. Defaults to asc.
	Offset      uint            `form:"offset" filterField:"false"`     // The offset of the first expense returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`      // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	var personID *uuid.UUID
	if f.PersonID.UUID != uuid.Nil {
		personID = &f.PersonID.UUID
	}

	// This does not set the string fields since they are
	// handled in the controller function
	return models.Expense{
		BudgetID:    f.BudgetID.UUID,
		PersonID:    personID,
		Kind:        models.ExpenseKind(f.Kind),
		Frequency:   types.Frequency(f.Frequency),
		CategoryTag: f.CategoryTag,
		Amount:      f.Amount,
	}
}
