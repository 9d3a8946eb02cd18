package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type CategoryTagEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this tag belongs to
	Name     string    `json:"name" example:"Pets" default:""`                          // Name of the tag
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryTagEditable) model() models.CategoryTag {
	return models.CategoryTag{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
	}
}

type CategoryTagLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/category-tags/bcf2e0cc-6172-4aa6-b9e9-0b2dbf6faa31"` // The tag itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // The budget this tag belongs to
}

type CategoryTag struct {
	models.DefaultModel
	CategoryTagEditable
	Links CategoryTagLinks `json:"links"`
}

// newCategoryTag returns the API v1 representation of the resource
func newCategoryTag(c *gin.Context, model models.CategoryTag) CategoryTag {
	url := c.GetString(string(models.DBContextURL))

	return CategoryTag{
		DefaultModel: model.DefaultModel,
		CategoryTagEditable: CategoryTagEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
		},
		Links: CategoryTagLinks{
			Self:   fmt.Sprintf("%s/v1/category-tags/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type CategoryTagListResponse struct {
	Data []CategoryTag `json:"data"` // List of resources
	// Names contains the built-in tags and the custom tags of the budget.
	// It is only set when filtering by budget.
	Names      []string    `json:"names,omitempty" example:"Rent,Groceries,Misc"`
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryTagCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryTagResponse `json:"data"`                                                          // List of created resources
}

func (t *CategoryTagCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryTagResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryTagResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *CategoryTag `json:"data"`                                                          // The resource
}

type CategoryTagQueryFilter struct {
	BudgetID hs_uuid.UUID `form:"budget"`                     // By budget ID
	Name     string       `form:"name" filterField:"false"`   // By name
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first tag returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of tags to return. Defaults to 50.
}

func (f CategoryTagQueryFilter) model() models.CategoryTag {
	// This does not set the name since it is
	// handled in the controller function
	return models.CategoryTag{
		BudgetID: f.BudgetID.UUID,
	}
}
