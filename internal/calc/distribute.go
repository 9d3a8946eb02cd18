package calc

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
)

// HouseholdShare computes the slice of the household total a single
// person carries under the configured distribution method.
//
// Even splits divide the total by the number of people. Income
// proportional splits weight by each person's annual income and fall
// back to an even split when nobody earns anything. Custom splits
// weight by the configured per-person weights, defaulting missing
// weights to one and falling back to an even split when all weights
// are zero. Unknown methods behave like an even split.
//
// A person not present in the snapshot carries no share, and with no
// people at all the share is zero.
func HouseholdShare(total decimal.Decimal, people []models.PersonSnapshot, method models.DistributionMethod, personID uuid.UUID, weights map[uuid.UUID]decimal.Decimal) (decimal.Decimal, error) {
	if len(people) == 0 {
		return decimal.Zero, nil
	}

	found := false
	for _, person := range people {
		if person.ID == personID {
			found = true
			break
		}
	}
	if !found {
		return decimal.Zero, nil
	}

	switch method {
	case models.DistributionIncomeProportional:
		totalIncome, err := TotalIncomeAnnual(people)
		if err != nil {
			return decimal.Zero, err
		}
		if totalIncome.IsZero() {
			return evenShare(total, len(people)), nil
		}

		var personIncome decimal.Decimal
		for _, person := range people {
			if person.ID != personID {
				continue
			}

			personIncome, err = PersonIncomeAnnual(person)
			if err != nil {
				return decimal.Zero, err
			}
		}

		return total.Mul(personIncome).Div(totalIncome), nil

	case models.DistributionCustom:
		totalWeight := decimal.Zero
		personWeight := decimal.NewFromInt(1)
		for _, person := range people {
			weight := decimal.NewFromInt(1)
			if w, ok := weights[person.ID]; ok {
				weight = w
			}
			if person.ID == personID {
				personWeight = weight
			}

			totalWeight = totalWeight.Add(weight)
		}
		if totalWeight.IsZero() {
			return evenShare(total, len(people)), nil
		}

		return total.Mul(personWeight).Div(totalWeight), nil

	default:
		return evenShare(total, len(people)), nil
	}
}

func evenShare(total decimal.Decimal, count int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(count)))
}
