package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPersonRoutes registers the routes for People with
// the RouterGroup that is passed.
func RegisterPersonRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPersonList)
		r.GET("", GetPeople)
		r.POST("", CreatePeople)
	}

	// Person with ID
	{
		r.OPTIONS("/:id", OptionsPersonDetail)
		r.GET("/:id", GetPerson)
		r.PATCH("/:id", UpdatePerson)
		r.DELETE("/:id", DeletePerson)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			People
// @Success		204
// @Router			/v1/people [options]
func OptionsPersonList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			People
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/people/{id} [options]
func OptionsPersonDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Person{})
}

// @Summary		Create person
// @Description	Creates a new person
// @Tags			People
// @Accept			json
// @Produce		json
// @Success		201		{object}	PersonCreateResponse
// @Failure		400		{object}	PersonCreateResponse
// @Failure		404		{object}	PersonCreateResponse
// @Failure		500		{object}	PersonCreateResponse
// @Param			people	body		[]PersonEditable	true	"People"
// @Router			/v1/people [post]
func CreatePeople(c *gin.Context) {
	var people []PersonEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &people)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PersonCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PersonCreateResponse{}

	for _, editable := range people {
		person := editable.model()

		err := models.DB.Create(&person).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPerson(c, person)
		r.Data = append(r.Data, PersonResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List people
// @Description	Returns a list of people
// @Tags			People
// @Produce		json
// @Success		200	{object}	PersonListResponse
// @Failure		500	{object}	PersonListResponse
// @Router			/v1/people [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Person returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of People to return. Defaults to 50."
func GetPeople(c *gin.Context) {
	var filter PersonQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var people []models.Person

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all People and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&people).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PersonListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Person, 0)
	for _, person := range people {
		apiResources = append(apiResources, newPerson(c, person))
	}

	c.JSON(http.StatusOK, PersonListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get person
// @Description	Returns a specific person
// @Tags			People
// @Produce		json
// @Success		200	{object}	PersonResponse
// @Failure		400	{object}	PersonResponse
// @Failure		404	{object}	PersonResponse
// @Failure		500	{object}	PersonResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/people/{id} [get]
func GetPerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var person models.Person
	err = models.DB.First(&person, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPerson(c, person)
	c.JSON(http.StatusOK, PersonResponse{Data: &apiResource})
}

// @Summary		Update person
// @Description	Update an existing person. Only values to be updated need to be specified.
// @Tags			People
// @Accept			json
// @Produce		json
// @Success		200		{object}	PersonResponse
// @Failure		400		{object}	PersonResponse
// @Failure		404		{object}	PersonResponse
// @Failure		500		{object}	PersonResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			person	body		PersonEditable	true	"Person"
// @Router			/v1/people/{id} [patch]
func UpdatePerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var person models.Person
	err = models.DB.First(&person, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PersonEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var data PersonEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&person).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPerson(c, person)
	c.JSON(http.StatusOK, PersonResponse{Data: &apiResource})
}

// @Summary		Delete person
// @Description	Deletes a person. Their personal expenses become unassigned, their income sources and distribution weight are deleted.
// @Tags			People
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/people/{id} [delete]
func DeletePerson(c *gin.Context) {
	deleteResource[models.Person](c)
}
