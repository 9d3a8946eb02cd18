package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
)

type SettingsEditable struct {
	DistributionMethod models.DistributionMethod  `json:"distributionMethod" example:"income-proportional" default:"even"` // How household expenses are split between the people
	Weights            map[string]decimal.Decimal `json:"weights"`                                                         // Weight per person ID for the "custom" distribution method
}

type SettingsLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/settings"` // The settings themselves
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The budget these settings belong to
}

type Settings struct {
	models.DefaultModel
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

// newSettings returns the API v1 representation of the household settings
func newSettings(c *gin.Context, model models.HouseholdSettings, weights map[string]decimal.Decimal) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			DistributionMethod: model.DistributionMethod,
			Weights:            weights,
		},
		Links: SettingsLinks{
			Self:   fmt.Sprintf("%s/v1/budgets/%s/settings", url, model.BudgetID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                          // The resource
}
