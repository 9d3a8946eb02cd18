package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type PersonEditable struct {
	Name     string    `json:"name" example:"Morgan" default:""`                       // Name of the person
	Note     string    `json:"note" example:"Works part time since June" default:""`   // A longer description
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this person belongs to
}

// model returns the database resource for the API representation of the editable fields
func (editable PersonEditable) model() models.Person {
	return models.Person{
		Name:     editable.Name,
		Note:     editable.Note,
		BudgetID: editable.BudgetID,
	}
}

type PersonLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/people/d0851226-9c4e-4dc9-a071-facf5dda7a25"`             // The person itself
	Budget   string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // The budget this person belongs to
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes?person=d0851226-9c4e-4dc9-a071-facf5dda7a25"`  // The income sources of this person
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?person=d0851226-9c4e-4dc9-a071-facf5dda7a25"` // The personal expenses of this person
}

type Person struct {
	models.DefaultModel
	PersonEditable
	Links PersonLinks `json:"links"`
}

// newPerson returns the API v1 representation of the resource
func newPerson(c *gin.Context, model models.Person) Person {
	url := c.GetString(string(models.DBContextURL))

	return Person{
		DefaultModel: model.DefaultModel,
		PersonEditable: PersonEditable{
			Name:     model.Name,
			Note:     model.Note,
			BudgetID: model.BudgetID,
		},
		Links: PersonLinks{
			Self:     fmt.Sprintf("%s/v1/people/%s", url, model.ID),
			Budget:   fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			Incomes:  fmt.Sprintf("%s/v1/incomes?person=%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?person=%s", url, model.ID),
		},
	}
}

type PersonListResponse struct {
	Data       []Person    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PersonCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PersonResponse `json:"data"`                                                          // List of created resources
}

func (t *PersonCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, PersonResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PersonResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Person `json:"data"`                                                          // The resource
}

type PersonQueryFilter struct {
	BudgetID hs_uuid.UUID `form:"budget"`                     // By budget ID
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By the note
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first person returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of people to return. Defaults to 50.
}

func (f PersonQueryFilter) model() models.Person {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Person{
		BudgetID: f.BudgetID.UUID,
	}
}
