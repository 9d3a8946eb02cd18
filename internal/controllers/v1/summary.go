package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/calc"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
)

type SummaryQuery struct {
	View string `form:"view"` // Time scale of the summary: daily, monthly or yearly. Defaults to monthly.
	AsOf string `form:"asOf"` // Reference date for expense lifecycles in YYYY-MM-DD format. Defaults to today.
}

type SummaryData struct {
	calc.Summary
	View     calc.ViewMode          `json:"view" example:"monthly"` // The time scale all amounts are reported in
	People   []calc.PersonBreakdown `json:"people"`                 // Per-person breakdown
	Expiring []Expense              `json:"expiring"`               // Expenses ending within the next seven days
	Ended    []Expense              `json:"ended"`                  // Expenses that have already ended
}

type SummaryResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SummaryData `json:"data"`                                                          // The resource
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/summary [options]
func OptionsBudgetSummary(c *gin.Context) {
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

	httputil.OptionsGet(c)
}

// @Summary		Budget summary
// @Description	Returns the calculated summary for a budget: totals, the per-person breakdown and expenses that are ending
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			view	query	string	false	"Time scale of the summary: daily, monthly or yearly. Defaults to monthly."
// @Param			asOf	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/budgets/{id}/summary [get]
func GetBudgetSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	// Every parameter is bound into a string, so this will always succeed
	var query SummaryQuery
	_ = c.Bind(&query)

	view := calc.ViewMonthly
	if query.View != "" {
		view = calc.ViewMode(query.View)
		if !view.Valid() {
			s := errViewInvalid.Error()
			c.JSON(http.StatusBadRequest, SummaryResponse{
				Error: &s,
			})
			return
		}
	}

	asOf, err := asOfDate(query.AsOf)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := budget.Snapshot(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := calc.ComputeSummary(snapshot, asOf, view)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	people, err := calc.ComputeBreakdowns(snapshot, asOf, view)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	expiring, ended := calc.EndingSoon(snapshot.Expenses, asOf)

	expiringResources := make([]Expense, 0, len(expiring))
	for _, expense := range expiring {
		expiringResources = append(expiringResources, newExpense(c, expense, asOf))
	}

	endedResources := make([]Expense, 0, len(ended))
	for _, expense := range ended {
		endedResources = append(endedResources, newExpense(c, expense, asOf))
	}

	data := SummaryData{
		Summary:  summary,
		View:     view,
		People:   people,
		Expiring: expiringResources,
		Ended:    endedResources,
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}
