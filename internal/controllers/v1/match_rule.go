package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterMatchRuleRoutes registers the routes for MatchRules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchRuleList)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRules)
	}

	// MatchRule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.GET("/:id", GetMatchRule)
		r.PATCH("/:id", UpdateMatchRule)
		r.DELETE("/:id", DeleteMatchRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.MatchRule{})
}

// @Summary		Create match rule
// @Description	Creates a new match rule
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		201		{object}	MatchRuleCreateResponse
// @Failure		400		{object}	MatchRuleCreateResponse
// @Failure		404		{object}	MatchRuleCreateResponse
// @Failure		500		{object}	MatchRuleCreateResponse
// @Param			rules	body		[]MatchRuleEditable	true	"MatchRules"
// @Router			/v1/match-rules [post]
func CreateMatchRules(c *gin.Context) {
	var rules []MatchRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &rules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MatchRuleCreateResponse{}

	for _, editable := range rules {
		rule := editable.model()

		err := models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMatchRule(c, rule)
		r.Data = append(r.Data, MatchRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List match rules
// @Description	Returns a list of match rules
// @Tags			MatchRules
// @Produce		json
// @Success		200	{object}	MatchRuleListResponse
// @Failure		500	{object}	MatchRuleListResponse
// @Router			/v1/match-rules [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match pattern"
// @Param			categoryTag	query	string	false	"Filter by the tag the rule applies"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func GetMatchRules(c *gin.Context) {
	var filter MatchRuleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var rules []models.MatchRule

	// Sort by priority, then by match pattern so that the order
	// mirrors how the rules are applied
	q := models.DB.
		Order("priority ASC, match ASC").
		Where(filter.model(), queryFields...)

	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchRuleListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]MatchRule, 0)
	for _, rule := range rules {
		apiResources = append(apiResources, newMatchRule(c, rule))
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get match rule
// @Description	Returns a specific match rule
// @Tags			MatchRules
// @Produce		json
// @Success		200	{object}	MatchRuleResponse
// @Failure		400	{object}	MatchRuleResponse
// @Failure		404	{object}	MatchRuleResponse
// @Failure		500	{object}	MatchRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [get]
func GetMatchRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.MatchRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	apiResource := newMatchRule(c, rule)
	c.JSON(http.StatusOK, MatchRuleResponse{Data: &apiResource})
}

// @Summary		Update match rule
// @Description	Update an existing match rule. Only values to be updated need to be specified.
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	MatchRuleResponse
// @Failure		400		{object}	MatchRuleResponse
// @Failure		404		{object}	MatchRuleResponse
// @Failure		500		{object}	MatchRuleResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		MatchRuleEditable	true	"MatchRule"
// @Router			/v1/match-rules/{id} [patch]
func UpdateMatchRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.MatchRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MatchRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	var data MatchRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	apiResource := newMatchRule(c, rule)
	c.JSON(http.StatusOK, MatchRuleResponse{Data: &apiResource})
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			MatchRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
	deleteResource[models.MatchRule](c)
}
