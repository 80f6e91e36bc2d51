// Package budget implements the party budget core: totals, the peanut
// filter, budget suggestions, and auto-balancing. Every function is pure and
// returns fresh slices; inputs are never modified.
package budget

import (
	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/shopspring/decimal"
)

// CalculateTotal sums price * quantity over items, skipping peanut items when
// peanutFreeOnly is set. The result is rounded to cents, half away from zero.
func CalculateTotal(items []model.Item, peanutFreeOnly bool) float64 {
	sum := decimal.Zero
	for _, it := range items {
		if peanutFreeOnly && it.ContainsPeanuts {
			continue
		}
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2).InexactFloat64()
}

// IsWithinBudget reports whether total is at or under cap.
func IsWithinBudget(total, budgetCap float64) bool {
	return total <= budgetCap
}

// FilterPeanutFree returns the items that do not contain peanuts.
func FilterPeanutFree(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !it.ContainsPeanuts {
			out = append(out, it)
		}
	}
	return out
}

// PerStudent splits total evenly across students, rounded to cents.
// Zero or negative student counts yield 0.
func PerStudent(total float64, students int) float64 {
	if students <= 0 {
		return 0
	}
	return decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(students))).Round(2).InexactFloat64()
}

// overage returns how far the cent-rounded total of items is above
// budgetCap. It is zero or negative when the list fits.
func overage(items []model.Item, budgetCap float64) decimal.Decimal {
	return decimal.NewFromFloat(CalculateTotal(items, false)).Sub(decimal.NewFromFloat(budgetCap))
}
