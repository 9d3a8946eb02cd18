package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// loadSettings returns the settings and weights for the budget in the URI.
func loadSettings(c *gin.Context) (models.HouseholdSettings, map[string]decimal.Decimal, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.HouseholdSettings{}, nil, err
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		return models.HouseholdSettings{}, nil, err
	}

	settings, err := models.SettingsForBudget(models.DB, budget.ID)
	if err != nil {
		return models.HouseholdSettings{}, nil, err
	}

	weights, err := settings.Weights(models.DB)
	if err != nil {
		return models.HouseholdSettings{}, nil, err
	}

	byPerson := make(map[string]decimal.Decimal, len(weights))
	for personID, weight := range weights {
		byPerson[personID.String()] = weight
	}

	return settings, byPerson, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/settings [options]
func OptionsBudgetSettings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get household settings
// @Description	Returns the household settings of a budget. Settings are created with the default method on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		400	{object}	SettingsResponse
// @Failure		404	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/settings [get]
func GetBudgetSettings(c *gin.Context) {
	settings, weights, err := loadSettings(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSettings(c, settings, weights)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

// @Summary		Update household settings
// @Description	Update the household settings of a budget. Only values to be updated need to be specified. Weights are merged by person ID.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		404			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/budgets/{id}/settings [patch]
func UpdateBudgetSettings(c *gin.Context) {
	settings, _, err := loadSettings(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, any("DistributionMethod")) {
		err = models.DB.Model(&settings).Select("DistributionMethod").Updates(models.HouseholdSettings{DistributionMethod: data.DistributionMethod}).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SettingsResponse{
				Error: &s,
			})
			return
		}
	}

	for person, weight := range data.Weights {
		personID, err := uuid.Parse(person)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, SettingsResponse{
				Error: &s,
			})
			return
		}

		err = upsertWeight(settings.BudgetID, personID, weight)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SettingsResponse{
				Error: &s,
			})
			return
		}
	}

	settings, weights, err := loadSettings(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSettings(c, settings, weights)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

// upsertWeight creates or updates the distribution weight of a person.
func upsertWeight(budgetID, personID uuid.UUID, weight decimal.Decimal) error {
	var existing models.DistributionWeight
	err := models.DB.
		Where(&models.DistributionWeight{BudgetID: budgetID, PersonID: personID}).
		First(&existing).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return models.DB.Create(&models.DistributionWeight{
			BudgetID: budgetID,
			PersonID: personID,
			Weight:   weight,
		}).Error
	}
	if err != nil {
		return err
	}

	return models.DB.Model(&existing).Select("Weight").Updates(models.DistributionWeight{Weight: weight}).Error
}
