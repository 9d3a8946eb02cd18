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
)

func createTestPerson(t *testing.T, p v1.PersonEditable, expectedStatus ...int) v1.PersonResponse {
	if p.BudgetID == uuid.Nil {
		p.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PersonEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/people", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var person v1.PersonCreateResponse
	test.DecodeResponse(t, &r, &person)

	if r.Code == http.StatusCreated {
		return person.Data[0]
	}

	return v1.PersonResponse{}
}

// TestPeopleDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestPeopleDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestPerson(t, v1.PersonEditable{BudgetID: b.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/people", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.PersonListResponse
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

// TestPeopleOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestPeopleOptions() {
	tests := []struct {
		name   string
		id     string // path at the people endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Person with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Person exists", createTestPerson(suite.T(), v1.PersonEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/people", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPeopleCreateFails() {
	// Test person for uniqueness
	p := createTestPerson(suite.T(), v1.PersonEditable{
		Name: "Unique Person Name for Budget",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                           // expected HTTP status
		testFunc func(t *testing.T, p v1.PersonCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, p v1.PersonCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field PersonEditable.note of type string", *p.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, p v1.PersonCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *p.Error)
			},
		},
		{
			"No Budget",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, p v1.PersonCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *p.Data[0].Error)
			},
		},
		{
			"Non-existing Budget",
			`[{ "budgetId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, p v1.PersonCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *p.Data[0].Error)
			},
		},
		{
			"Duplicate name in Budget",
			[]v1.PersonEditable{
				{
					BudgetID: p.Data.BudgetID,
					Name:     p.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, p v1.PersonCreateResponse) {
				assert.Equal(t, models.ErrPersonNameNotUnique.Error(), *p.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/people", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var p v1.PersonCreateResponse
			test.DecodeResponse(t, &r, &p)

			if tt.testFunc != nil {
				tt.testFunc(t, p)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPeopleGetFilter() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{})
	b2 := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestPerson(suite.T(), v1.PersonEditable{
		Name:     "Alex",
		Note:     "Full time",
		BudgetID: b1.Data.ID,
	})

	_ = createTestPerson(suite.T(), v1.PersonEditable{
		Name:     "Sam",
		Note:     "Part time",
		BudgetID: b2.Data.ID,
	})

	_ = createTestPerson(suite.T(), v1.PersonEditable{
		Name:     "Robin",
		BudgetID: b2.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 1},
		{"Budget 2", fmt.Sprintf("budget=%s", b2.Data.ID), 2},
		{"Budget Not Existing", "budget=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Empty Note", "note=", 1},
		{"Fuzzy note", "note=time", 2},
		{"Name single", "name=Alex", 1},
		{"Search", "search=time", 2},
		{"Search name", "search=rob", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.PersonListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/people?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// Verify that updating people works as desired
func (suite *TestSuiteStandard) TestPeopleUpdate() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Name: "Name of the person"})

	tests := []struct {
		name     string                                  // name of the test
		person   map[string]any                          // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, p v1.PersonResponse) // tests to perform against the updated person resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, p v1.PersonResponse) {
				assert.Equal(t, "New note!", p.Data.Note)
				assert.Equal(t, "Another name", p.Data.Name)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, person.Data.Links.Self, tt.person)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var p v1.PersonResponse
			test.DecodeResponse(t, &r, &p)

			if tt.testFunc != nil {
				tt.testFunc(t, p)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPeopleUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Person", uuid.New().String(), `{"name": "Does not exist"}`, http.StatusNotFound},
		{"Set Budget to uuid.Nil", "", v1.PersonEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				person := createTestPerson(suite.T(), v1.PersonEditable{
					Name: "New person",
					Note: "Auto-created for test",
				})

				tt.id = person.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/people/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestPeopleDelete verifies all cases for person deletions.
func (suite *TestSuiteStandard) TestPeopleDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Person", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				p := createTestPerson(t, v1.PersonEditable{})
				tt.id = p.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/people/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestPeopleDeleteUnassignsExpenses verifies that the expenses of a
// deleted person stay in the budget as unassigned expenses.
func (suite *TestSuiteStandard) TestPeopleDeleteUnassignsExpenses() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Name: "Leaving"})
	personID := person.Data.ID

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		BudgetID: person.Data.BudgetID,
		PersonID: &personID,
		Kind:     models.KindPersonal,
	})

	r := test.Request(suite.T(), http.MethodDelete, person.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The expense still exists, but is no longer assigned to anyone
	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Nil(suite.T(), updated.Data.PersonID)
}
