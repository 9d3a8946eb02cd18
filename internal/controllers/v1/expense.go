package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/calc"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for Expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// asOfDate parses the asOf query parameter, defaulting to today.
func asOfDate(param string) (types.Date, error) {
	if param == "" {
		return types.Today(), nil
	}

	return types.ParseDate(param)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expense
// @Description	Creates a new expense. Expenses without a category tag are tagged by the budget's match rules.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var expenses []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &expenses)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range expenses {
		expense := editable.model()

		// Tag the expense by description when no tag is given
		if expense.CategoryTag == "" {
			tag, err := models.TagForDescription(models.DB, expense.BudgetID, expense.Description)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			expense.CategoryTag = tag
		}

		err := models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense, types.Today())
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			person		query	string	false	"Filter by the person a personal expense is assigned to"
// @Param			kind		query	string	false	"Filter by kind: household or personal"
// @Param			frequency	query	string	false	"Filter by recurrence frequency"
// @Param			categoryTag	query	string	false	"Filter by category tag"
// @Param			amount		query	string	false	"Filter by amount"
// @Param			description	query	string	false	"Filter by description"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in the description. Supports * wildcards."
// @Param			hasEndDate	query	bool	false	"Only expenses with an end date"
// @Param			status		query	string	false	"Filter by lifecycle status: active, expiring-soon or ended"
// @Param			asOf		query	string	false	"Reference date for the lifecycle status in YYYY-MM-DD format. Defaults to today."
// @Param			sort		query	string	false	"Sort by date, alphabetical or cost. Defaults to date."
// @Param			order		query	string	false	"Sort direction, asc or desc. Defaults to asc."
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	asOf, err := asOfDate(filter.AsOf)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var expenses []models.Expense

	q := models.DB.
		Order("date ASC").
		Where(filter.model(), queryFields...)

	q = descriptionFilters(models.DB, q, setFields, filter.Description, filter.Note, "")

	err = q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// The search, end date and lifecycle filters work on the loaded
	// expenses so that their semantics are identical to the summary
	// calculations.
	expenses = calc.FilterExpenses(expenses, calc.Preferences{
		Search:     filter.Search,
		HasEndDate: filter.HasEndDate,
	})

	if filter.Status != "" {
		filtered := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if calc.Classify(expense, asOf) == calc.Status(filter.Status) {
				filtered = append(filtered, expense)
			}
		}
		expenses = filtered
	}

	sort := calc.SortDate
	if slices.Contains(setFields, "Sort") {
		sort = calc.SortField(filter.Sort)
	}

	order := calc.OrderAscending
	if slices.Contains(setFields, "Order") {
		order = calc.SortOrder(filter.Order)
	}
	calc.SortExpenses(expenses, sort, order)

	// Pagination is applied after filtering since the lifecycle and
	// search filters cannot run in the database.
	count := int64(len(expenses))

	if int(filter.Offset) < len(expenses) {
		expenses = expenses[filter.Offset:]
	} else {
		expenses = []models.Expense{}
	}

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	apiResources := make([]Expense, 0)
	for _, expense := range expenses {
		apiResources = append(apiResources, newExpense(c, expense, asOf))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newExpense(c, expense, types.Today())
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified. Clearing the category tag re-tags the expense by the budget's match rules.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	// An update that clears the tag runs the match rules again,
	// the same way an untagged create does
	if slices.Contains(updateFields, "CategoryTag") && data.CategoryTag == "" {
		description := expense.Description
		if slices.Contains(updateFields, "Description") {
			description = data.Description
		}

		tag, err := models.TagForDescription(models.DB, expense.BudgetID, description)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}

		data.CategoryTag = tag
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newExpense(c, expense, types.Today())
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	deleteResource[models.Expense](c)
}
