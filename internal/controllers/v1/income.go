package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for Incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{})
}

// @Summary		Create income
// @Description	Creates a new income source
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		404		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var incomes []IncomeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &incomes)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range incomes {
		income := editable.model()

		err := models.DB.Create(&income).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List incomes
// @Description	Returns a list of income sources
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			person		query	string	false	"Filter by person ID"
// @Param			label		query	string	false	"Filter by label"
// @Param			frequency	query	string	false	"Filter by recurrence frequency"
// @Param			amount		query	string	false	"Filter by amount"
// @Param			offset		query	uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Incomes to return. Defaults to 50."
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var incomes []models.Income

	// Always sort by label
	q := models.DB.
		Order("label ASC").
		Where(filter.model(), queryFields...)

	if filter.Label != "" {
		q = q.Where("label LIKE ?", fmt.Sprintf("%%%s%%", filter.Label))
	} else if slices.Contains(setFields, "Label") {
		q = q.Where("label = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Incomes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Income, 0)
	for _, income := range incomes {
		apiResources = append(apiResources, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific income source
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Update income
// @Description	Update an existing income source. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var data IncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Delete income
// @Description	Deletes an income source
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	deleteResource[models.Income](c)
}
