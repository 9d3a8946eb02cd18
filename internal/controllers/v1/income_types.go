package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	PersonID  uuid.UUID       `json:"personId" example:"d0851226-9c4e-4dc9-a071-facf5dda7a25"`                                                       // ID of the person this income belongs to
	Label     string          `json:"label" example:"Salary" default:""`                                                                             // Name of the income source
	Amount    decimal.Decimal `json:"amount" example:"2600" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount of the income per recurrence
	Frequency types.Frequency `json:"frequency" example:"monthly" default:"monthly"`                                                                 // How often the income recurs
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		PersonID:  editable.PersonID,
		Label:     editable.Label,
		Amount:    editable.Amount,
		Frequency: editable.Frequency,
	}
}

type IncomeLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/incomes/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`   // The income itself
	Person string `json:"person" example:"https://example.com/api/v1/people/d0851226-9c4e-4dc9-a071-facf5dda7a25"` // The person this income belongs to
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

// newIncome returns the API v1 representation of the resource
func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			PersonID:  model.PersonID,
			Label:     model.Label,
			Amount:    model.Amount,
			Frequency: model.Frequency,
		},
		Links: IncomeLinks{
			Self:   fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Person: fmt.Sprintf("%s/v1/people/%s", url, model.PersonID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created resources
}

func (t *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Income `json:"data"`                                                          // The resource
}

type IncomeQueryFilter struct {
	PersonID  hs_uuid.UUID    `form:"person"`                     // By person ID
	Label     string          `form:"label" filterField:"false"`  // By label
	Frequency string          `form:"frequency"`                  // By recurrence frequency
	Amount    decimal.Decimal `form:"amount"`                     // Exact amount
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	// This does not set the label since it is
	// handled in the controller function
	return models.Income{
		PersonID:  f.PersonID.UUID,
		Amount:    f.Amount,
		Frequency: types.Frequency(f.Frequency),
	}
}
