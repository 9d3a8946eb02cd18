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

func createTestMatchRule(t *testing.T, c v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if c.BudgetID == uuid.Nil {
		c.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if c.Match == "" {
		c.Match = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MatchRuleEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rule v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &rule)

	if r.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.MatchRuleResponse{}
}

// TestMatchRulesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestMatchRulesDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestMatchRule(t, v1.MatchRuleEditable{BudgetID: b.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.MatchRuleListResponse
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

// TestMatchRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the match rules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No MatchRule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"MatchRule exists", createTestMatchRule(suite.T(), v1.MatchRuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesCreateFails() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name     string
		body     any
		status   int                                              // expected HTTP status
		testFunc func(t *testing.T, r v1.MatchRuleCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "match": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.MatchRuleCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field MatchRuleEditable.match of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.MatchRuleCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"No Budget",
			`[{ "match": "Netflix*", "categoryTag": "Subscriptions" }]`,
			http.StatusNotFound,
			func(t *testing.T, r v1.MatchRuleCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *r.Data[0].Error)
			},
		},
		{
			"Empty match pattern",
			[]v1.MatchRuleEditable{
				{
					BudgetID:    b.Data.ID,
					Match:       "   ",
					CategoryTag: "Subscriptions",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.MatchRuleCreateResponse) {
				assert.Equal(t, models.ErrMatchRuleEmpty.Error(), *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MatchRuleCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{})
	b2 := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b1.Data.ID, Priority: 1, Match: "Netflix*", CategoryTag: "Subscriptions"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b1.Data.ID, Priority: 2, Match: "*market*", CategoryTag: "Groceries"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b2.Data.ID, Priority: 1, Match: "Spotify*", CategoryTag: "Subscriptions"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 2},
		{"Budget 2", fmt.Sprintf("budget=%s", b2.Data.ID), 1},
		{"Budget Not Existing", "budget=d4ec59e9-81a1-4ffa-9a0c-0b9b39b44a3e", 0},
		{"Priority", "priority=1", 2},
		{"Fuzzy match pattern", "match=Netflix", 1},
		{"CategoryTag", "categoryTag=Subscriptions", 2},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.MatchRuleListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestMatchRulesGetSorted verifies that match rules are returned in the
// order they are applied in, priority first.
func (suite *TestSuiteStandard) TestMatchRulesGetSorted() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b.Data.ID, Priority: 2, Match: "Aldi*", CategoryTag: "Groceries"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b.Data.ID, Priority: 1, Match: "Netflix*", CategoryTag: "Subscriptions"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{BudgetID: b.Data.ID, Priority: 1, Match: "Disney*", CategoryTag: "Subscriptions"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?budget=%s", b.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Disney*", response.Data[0].Match)
	assert.Equal(suite.T(), "Netflix*", response.Data[1].Match)
	assert.Equal(suite.T(), "Aldi*", response.Data[2].Match)
}

// Verify that updating match rules works as desired
func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Netflix*", CategoryTag: "Subscriptions"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match":    "Netflix DE*",
		"priority": 3,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Netflix DE*", updated.Data.Match)
	assert.Equal(suite.T(), uint(3), updated.Data.Priority)
	assert.Equal(suite.T(), "Subscriptions", updated.Data.CategoryTag)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"match": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "match": 2" }`, http.StatusBadRequest},
		{"Empty match pattern", "", `{"match": " "}`, http.StatusBadRequest},
		{"Non-existing MatchRule", uuid.New().String(), `{"match": "Does not exist*"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})
				tt.id = rule.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/match-rules/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestMatchRulesDelete verifies all cases for match rule deletions.
func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing MatchRule", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				rule := createTestMatchRule(t, v1.MatchRuleEditable{})
				tt.id = rule.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/match-rules/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
