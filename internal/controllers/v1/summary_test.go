package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/calc"
	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/hearthshare/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createSummaryTestBudget sets up a budget with two people and their
// expenses: Alex earns 3000 and pays 50 for the gym, Sam earns 1000.
// The household pays 1200 rent.
func createSummaryTestBudget(t *testing.T) v1.BudgetResponse {
	b := createTestBudget(t, v1.BudgetEditable{Name: "Summary budget"})

	alex := createTestPerson(t, v1.PersonEditable{BudgetID: b.Data.ID, Name: "Alex"})
	sam := createTestPerson(t, v1.PersonEditable{BudgetID: b.Data.ID, Name: "Sam"})

	_ = createTestIncome(t, v1.IncomeEditable{
		PersonID:  alex.Data.ID,
		Label:     "Salary",
		Amount:    decimal.NewFromFloat(3000),
		Frequency: types.FrequencyMonthly,
	})

	_ = createTestIncome(t, v1.IncomeEditable{
		PersonID:  sam.Data.ID,
		Label:     "Salary",
		Amount:    decimal.NewFromFloat(1000),
		Frequency: types.FrequencyMonthly,
	})

	_ = createTestExpense(t, v1.ExpenseEditable{
		BudgetID:    b.Data.ID,
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Kind:        models.KindHousehold,
		Date:        types.NewDate(2026, time.January, 1),
	})

	alexID := alex.Data.ID
	_ = createTestExpense(t, v1.ExpenseEditable{
		BudgetID:    b.Data.ID,
		PersonID:    &alexID,
		Description: "Gym membership",
		Amount:      decimal.NewFromFloat(50),
		Kind:        models.KindPersonal,
		Date:        types.NewDate(2026, time.January, 1),
	})

	return b
}

func (suite *TestSuiteStandard) TestSummaryGet() {
	b := createSummaryTestBudget(suite.T())

	r := test.Request(suite.T(), http.MethodGet, b.Data.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)

	require.NotNil(suite.T(), summary.Data)
	assert.Equal(suite.T(), calc.ViewMonthly, summary.Data.View)

	assert.True(suite.T(), summary.Data.TotalIncome.Equal(decimal.NewFromFloat(4000)), "total income is %s", summary.Data.TotalIncome)
	assert.True(suite.T(), summary.Data.HouseholdExpenses.Equal(decimal.NewFromFloat(1200)), "household expenses are %s", summary.Data.HouseholdExpenses)
	assert.True(suite.T(), summary.Data.PersonalExpenses.Equal(decimal.NewFromFloat(50)), "personal expenses are %s", summary.Data.PersonalExpenses)
	assert.True(suite.T(), summary.Data.TotalExpenses.Equal(decimal.NewFromFloat(1250)), "total expenses are %s", summary.Data.TotalExpenses)
	assert.True(suite.T(), summary.Data.Remaining.Equal(decimal.NewFromFloat(2750)), "remaining is %s", summary.Data.Remaining)

	// People are ordered by name, the rent is split evenly
	require.Len(suite.T(), summary.Data.People, 2)

	alex := summary.Data.People[0]
	assert.Equal(suite.T(), "Alex", alex.Name)
	assert.True(suite.T(), alex.Income.Equal(decimal.NewFromFloat(3000)))
	assert.True(suite.T(), alex.PersonalExpenses.Equal(decimal.NewFromFloat(50)))
	assert.True(suite.T(), alex.HouseholdShare.Equal(decimal.NewFromFloat(600)))
	assert.True(suite.T(), alex.Remaining.Equal(decimal.NewFromFloat(2350)))

	sam := summary.Data.People[1]
	assert.Equal(suite.T(), "Sam", sam.Name)
	assert.True(suite.T(), sam.Income.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), sam.PersonalExpenses.IsZero())
	assert.True(suite.T(), sam.HouseholdShare.Equal(decimal.NewFromFloat(600)))
	assert.True(suite.T(), sam.Remaining.Equal(decimal.NewFromFloat(400)))

	assert.Empty(suite.T(), summary.Data.Expiring)
	assert.Empty(suite.T(), summary.Data.Ended)
}

// TestSummaryGetViews verifies that the summary scales with the view.
func (suite *TestSuiteStandard) TestSummaryGetViews() {
	b := createSummaryTestBudget(suite.T())

	tests := []struct {
		name        string
		query       string
		totalIncome decimal.Decimal
	}{
		{"Default is monthly", "", decimal.NewFromFloat(4000)},
		{"Monthly", "view=monthly", decimal.NewFromFloat(4000)},
		{"Yearly", "view=yearly", decimal.NewFromFloat(48000)},
		{"Daily", "view=daily", decimal.NewFromFloat(4000).Div(decimal.NewFromFloat(30.44))},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?%s", b.Data.Links.Summary, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var summary v1.SummaryResponse
			test.DecodeResponse(t, &r, &summary)

			diff := summary.Data.TotalIncome.Sub(tt.totalIncome).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.New(1, -6)), "total income is %s, expected %s", summary.Data.TotalIncome, tt.totalIncome)
		})
	}
}

// TestSummaryGetEndingSoon verifies the expiring and ended lists.
func (suite *TestSuiteStandard) TestSummaryGetEndingSoon() {
	b := createSummaryTestBudget(suite.T())

	gymEnd := types.NewDate(2026, time.June, 20)
	oldEnd := types.NewDate(2026, time.May, 1)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		BudgetID:    b.Data.ID,
		Description: "Trial subscription",
		Amount:      decimal.NewFromFloat(10),
		Date:        types.NewDate(2026, time.January, 1),
		EndDate:     &gymEnd,
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		BudgetID:    b.Data.ID,
		Description: "Old internet contract",
		Amount:      decimal.NewFromFloat(40),
		Date:        types.NewDate(2026, time.January, 1),
		EndDate:     &oldEnd,
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?asOf=2026-06-15", b.Data.Links.Summary), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)

	require.Len(suite.T(), summary.Data.Expiring, 1)
	assert.Equal(suite.T(), "Trial subscription", summary.Data.Expiring[0].Description)
	assert.Equal(suite.T(), calc.StatusExpiringSoon, summary.Data.Expiring[0].Status)

	require.Len(suite.T(), summary.Data.Ended, 1)
	assert.Equal(suite.T(), "Old internet contract", summary.Data.Ended[0].Description)

	// The expiring expense still counts, the ended one does not:
	// 1200 rent + 50 gym + 10 trial
	assert.True(suite.T(), summary.Data.TotalExpenses.Equal(decimal.NewFromFloat(1260)), "total expenses are %s", summary.Data.TotalExpenses)
}

func (suite *TestSuiteStandard) TestSummaryGetFails() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		path   string
		query  string
		status int
	}{
		{"No Budget with this ID", uuid.New().String(), "", http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", "", http.StatusBadRequest},
		{"Invalid view", b.Data.ID.String(), "view=hourly", http.StatusBadRequest},
		{"Invalid asOf", b.Data.ID.String(), "asOf=someday", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/summary?%s", tt.path, tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestSummaryOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSummaryOptions() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodOptions, b.Data.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
