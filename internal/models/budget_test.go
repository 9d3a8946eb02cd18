package models_test

import (
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	name := " Whitespace galore!   "
	note := " Some more whitespace in the notes    "
	currency := " eur "

	budget := suite.createTestBudget(models.Budget{
		Name:     name,
		Note:     note,
		Currency: currency,
	})

	assert.Equal(suite.T(), "Whitespace galore!", budget.Name)
	assert.Equal(suite.T(), "Some more whitespace in the notes", budget.Note)
	assert.Equal(suite.T(), "EUR", budget.Currency)
}

func (suite *TestSuiteStandard) TestBudgetCurrencyInvalid() {
	err := models.DB.Create(&models.Budget{Currency: "not-a-currency"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetCurrencyInvalid)

	// An empty currency is allowed
	err = models.DB.Create(&models.Budget{Name: "No currency"}).Error
	assert.Nil(suite.T(), err)
}

// TestBudgetActivate verifies that exactly one budget is active at a time.
func (suite *TestSuiteStandard) TestBudgetActivate() {
	first := suite.createTestBudget(models.Budget{Name: "First"})
	second := suite.createTestBudget(models.Budget{Name: "Second"})

	require.Nil(suite.T(), first.Activate(models.DB))
	require.Nil(suite.T(), second.Activate(models.DB))

	var budgets []models.Budget
	require.Nil(suite.T(), models.DB.Where(&models.Budget{Active: true}).Find(&budgets).Error)

	require.Len(suite.T(), budgets, 1)
	assert.Equal(suite.T(), second.ID, budgets[0].ID)
}

// TestBudgetPeopleSorted verifies that people are returned sorted by name.
func (suite *TestSuiteStandard) TestBudgetPeopleSorted() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing"})

	_ = suite.createTestPerson(models.Person{BudgetID: budget.ID, Name: "Zoe"})
	_ = suite.createTestPerson(models.Person{BudgetID: budget.ID, Name: "Alex"})

	people, err := budget.People(models.DB)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), people, 2)
	assert.Equal(suite.T(), "Alex", people[0].Name)
	assert.Equal(suite.T(), "Zoe", people[1].Name)
}

// TestBudgetAfterDelete verifies that deleting a budget takes all of its
// resources with it, without touching other budgets.
func (suite *TestSuiteStandard) TestBudgetAfterDelete() {
	budget := suite.createTestBudget(models.Budget{Name: "Doomed"})
	keep := suite.createTestBudget(models.Budget{Name: "Keep"})

	person := suite.createTestPerson(models.Person{BudgetID: budget.ID, Name: "Alex"})
	_ = suite.createTestIncome(models.Income{PersonID: person.ID, Label: "Salary"})
	_ = suite.createTestExpense(models.Expense{BudgetID: budget.ID, Description: "Rent"})

	require.Nil(suite.T(), models.DB.Create(&models.HouseholdSettings{BudgetID: budget.ID, DistributionMethod: models.DistributionCustom}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.DistributionWeight{BudgetID: budget.ID, PersonID: person.ID, Weight: decimal.NewFromInt(2)}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.MatchRule{BudgetID: budget.ID, Match: "Rent*", CategoryTag: "Housing"}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.CategoryTag{BudgetID: budget.ID, Name: "Housing"}).Error)

	keepPerson := suite.createTestPerson(models.Person{BudgetID: keep.ID, Name: "Sam"})
	_ = suite.createTestIncome(models.Income{PersonID: keepPerson.ID, Label: "Salary"})
	_ = suite.createTestExpense(models.Expense{BudgetID: keep.ID, Description: "Groceries"})

	require.Nil(suite.T(), models.DB.Delete(&budget).Error)

	var count int64
	for _, model := range []any{
		&models.Person{},
		&models.Expense{},
		&models.HouseholdSettings{},
		&models.DistributionWeight{},
		&models.MatchRule{},
		&models.CategoryTag{},
	} {
		require.Nil(suite.T(), models.DB.Model(model).Where("budget_id = ?", budget.ID).Count(&count).Error)
		assert.Zero(suite.T(), count, "leftover %T", model)
	}

	require.Nil(suite.T(), models.DB.Model(&models.Income{}).Where("person_id = ?", person.ID).Count(&count).Error)
	assert.Zero(suite.T(), count)

	// The other budget is untouched
	require.Nil(suite.T(), models.DB.Model(&models.Person{}).Where("budget_id = ?", keep.ID).Count(&count).Error)
	assert.EqualValues(suite.T(), 1, count)
	require.Nil(suite.T(), models.DB.Model(&models.Income{}).Where("person_id = ?", keepPerson.ID).Count(&count).Error)
	assert.EqualValues(suite.T(), 1, count)
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Where("budget_id = ?", keep.ID).Count(&count).Error)
	assert.EqualValues(suite.T(), 1, count)
}

func (suite *TestSuiteStandard) TestBudgetExport() {
	_ = suite.createTestBudget(models.Budget{Name: "Testing"})

	raw, err := models.Budget{}.Export()
	require.Nil(suite.T(), err)
	assert.Contains(suite.T(), string(raw), "Testing")
}
