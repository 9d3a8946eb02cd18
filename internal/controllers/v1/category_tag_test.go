package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategoryTag(t *testing.T, c v1.CategoryTagEditable, expectedStatus ...int) v1.CategoryTagResponse {
	if c.BudgetID == uuid.Nil {
		c.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryTagEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/category-tags", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tag v1.CategoryTagCreateResponse
	test.DecodeResponse(t, &r, &tag)

	if r.Code == http.StatusCreated {
		return tag.Data[0]
	}

	return v1.CategoryTagResponse{}
}

// TestCategoryTagsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoryTagsDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategoryTag(t, v1.CategoryTagEditable{BudgetID: b.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/category-tags", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryTagListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestCategoryTagsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoryTagsOptions() {
	tests := []struct {
		name   string
		id     string // path at the category tags endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No CategoryTag with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"CategoryTag exists", createTestCategoryTag(suite.T(), v1.CategoryTagEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/category-tags", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryTagsCreateFails() {
	// Test tag for uniqueness
	c := createTestCategoryTag(suite.T(), v1.CategoryTagEditable{
		Name: "Unique Tag Name for Budget",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                                // expected HTTP status
		testFunc func(t *testing.T, c v1.CategoryTagCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryTagCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CategoryTagEditable.name of type string", *c.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryTagCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *c.Error)
			},
		},
		{
			"No Budget",
			`[{ "name": "Pets" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CategoryTagCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *c.Data[0].Error)
			},
		},
		{
			"Empty name",
			[]v1.CategoryTagEditable{
				{
					BudgetID: c.Data.BudgetID,
					Name:     "   ",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryTagCreateResponse) {
				assert.Equal(t, models.ErrCategoryTagEmpty.Error(), *c.Data[0].Error)
			},
		},
		{
			"Duplicate name in budget",
			[]v1.CategoryTagEditable{
				{
					BudgetID: c.Data.BudgetID,
					Name:     c.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryTagCreateResponse) {
				assert.Equal(t, models.ErrCategoryTagNotUnique.Error(), *c.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/category-tags", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var c v1.CategoryTagCreateResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

// TestCategoryTagsNames verifies that filtering by budget returns the
// built-in tags together with the custom ones.
func (suite *TestSuiteStandard) TestCategoryTagsNames() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestCategoryTag(suite.T(), v1.CategoryTagEditable{BudgetID: b.Data.ID, Name: "Pets"})
	_ = createTestCategoryTag(suite.T(), v1.CategoryTagEditable{BudgetID: b.Data.ID, Name: "Clothing"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-tags?budget=%s", b.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryTagListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)

	require.NotEmpty(suite.T(), response.Names)
	for _, name := range models.DefaultCategoryTags() {
		assert.Contains(suite.T(), response.Names, name)
	}
	assert.Contains(suite.T(), response.Names, "Pets")
	assert.Contains(suite.T(), response.Names, "Clothing")

	// Without a budget filter there is no name list
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-tags", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Names)
}

func (suite *TestSuiteStandard) TestCategoryTagsGetFilter() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{})
	b2 := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestCategoryTag(suite.T(), v1.CategoryTagEditable{BudgetID: b1.Data.ID, Name: "Pets"})
	_ = createTestCategoryTag(suite.T(), v1.CategoryTagEditable{BudgetID: b2.Data.ID, Name: "Clothing"})
	_ = createTestCategoryTag(suite.T(), v1.CategoryTagEditable{BudgetID: b2.Data.ID, Name: "Cleaning"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 1},
		{"Budget 2", fmt.Sprintf("budget=%s", b2.Data.ID), 2},
		{"Budget Not Existing", "budget=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Fuzzy name", "name=Cl", 2},
		{"Name single", "name=Pets", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryTagListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/category-tags?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// Verify that updating category tags works as desired
func (suite *TestSuiteStandard) TestCategoryTagsUpdate() {
	tag := createTestCategoryTag(suite.T(), v1.CategoryTagEditable{Name: "Pets"})

	r := test.Request(suite.T(), http.MethodPatch, tag.Data.Links.Self, map[string]any{
		"name": "Pet supplies",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var c v1.CategoryTagResponse
	test.DecodeResponse(suite.T(), &r, &c)
	assert.Equal(suite.T(), "Pet supplies", c.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryTagsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing CategoryTag", uuid.New().String(), `{"name": "Does not exist"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				tag := createTestCategoryTag(suite.T(), v1.CategoryTagEditable{})
				tt.id = tag.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-tags/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoryTagsDelete verifies all cases for category tag deletions.
func (suite *TestSuiteStandard) TestCategoryTagsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing CategoryTag", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCategoryTag(t, v1.CategoryTagEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/category-tags/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
