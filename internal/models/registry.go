package models

import "encoding/json"

// Model is implemented by all database resources.
type Model interface {
	Export() (json.RawMessage, error)
}

// Registry contains an instance of each model for operations that
// need to iterate over all of them.
var Registry = []Model{
	Budget{},
	Person{},
	Income{},
	Expense{},
	HouseholdSettings{},
	DistributionWeight{},
	CategoryTag{},
	MatchRule{},
}
