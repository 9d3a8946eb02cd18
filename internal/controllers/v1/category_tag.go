package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// RegisterCategoryTagRoutes registers the routes for CategoryTags with
// the RouterGroup that is passed.
func RegisterCategoryTagRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryTagList)
		r.GET("", GetCategoryTags)
		r.POST("", CreateCategoryTags)
	}

	// CategoryTag with ID
	{
		r.OPTIONS("/:id", OptionsCategoryTagDetail)
		r.GET("/:id", GetCategoryTag)
		r.PATCH("/:id", UpdateCategoryTag)
		r.DELETE("/:id", DeleteCategoryTag)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryTags
// @Success		204
// @Router			/v1/category-tags [options]
func OptionsCategoryTagList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryTags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-tags/{id} [options]
func OptionsCategoryTagDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryTag{})
}

// @Summary		Create category tag
// @Description	Creates a new custom category tag
// @Tags			CategoryTags
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryTagCreateResponse
// @Failure		400		{object}	CategoryTagCreateResponse
// @Failure		404		{object}	CategoryTagCreateResponse
// @Failure		500		{object}	CategoryTagCreateResponse
// @Param			tags	body		[]CategoryTagEditable	true	"CategoryTags"
// @Router			/v1/category-tags [post]
func CreateCategoryTags(c *gin.Context) {
	var tags []CategoryTagEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &tags)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTagCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryTagCreateResponse{}

	for _, editable := range tags {
		tag := editable.model()

		err := models.DB.Create(&tag).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryTag(c, tag)
		r.Data = append(r.Data, CategoryTagResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List category tags
// @Description	Returns a list of custom category tags. When filtering by budget, the response also contains the full tag name list including the built-in tags.
// @Tags			CategoryTags
// @Produce		json
// @Success		200	{object}	CategoryTagListResponse
// @Failure		500	{object}	CategoryTagListResponse
// @Router			/v1/category-tags [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			offset	query	uint	false	"The offset of the first tag returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of tags to return. Defaults to 50."
func GetCategoryTags(c *gin.Context) {
	var filter CategoryTagQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var tags []models.CategoryTag

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all tags and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&tags).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTagListResponse{
			Error: &e,
		})
		return
	}

	// The full name list includes the built-in tags
	var names []string
	if filter.BudgetID.UUID != hs_uuid.Nil.UUID {
		names, err = models.TagsForBudget(models.DB, filter.BudgetID.UUID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CategoryTagListResponse{
				Error: &e,
			})
			return
		}
	}

	apiResources := make([]CategoryTag, 0)
	for _, tag := range tags {
		apiResources = append(apiResources, newCategoryTag(c, tag))
	}

	c.JSON(http.StatusOK, CategoryTagListResponse{
		Data:  apiResources,
		Names: names,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category tag
// @Description	Returns a specific category tag
// @Tags			CategoryTags
// @Produce		json
// @Success		200	{object}	CategoryTagResponse
// @Failure		400	{object}	CategoryTagResponse
// @Failure		404	{object}	CategoryTagResponse
// @Failure		500	{object}	CategoryTagResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-tags/{id} [get]
func GetCategoryTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	var tag models.CategoryTag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCategoryTag(c, tag)
	c.JSON(http.StatusOK, CategoryTagResponse{Data: &apiResource})
}

// @Summary		Update category tag
// @Description	Update an existing category tag. Only values to be updated need to be specified.
// @Tags			CategoryTags
// @Accept			json
// @Produce		json
// @Success		200	{object}	CategoryTagResponse
// @Failure		400	{object}	CategoryTagResponse
// @Failure		404	{object}	CategoryTagResponse
// @Failure		500	{object}	CategoryTagResponse
// @Param			id	path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tag	body		CategoryTagEditable	true	"CategoryTag"
// @Router			/v1/category-tags/{id} [patch]
func UpdateCategoryTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	var tag models.CategoryTag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryTagEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	var data CategoryTagEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&tag).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTagResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCategoryTag(c, tag)
	c.JSON(http.StatusOK, CategoryTagResponse{Data: &apiResource})
}

// @Summary		Delete category tag
// @Description	Deletes a category tag
// @Tags			CategoryTags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-tags/{id} [delete]
func DeleteCategoryTag(c *gin.Context) {
	deleteResource[models.CategoryTag](c)
}
