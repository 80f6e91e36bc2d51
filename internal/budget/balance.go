package budget

import (
	"github.com/theirongolddev/partyplan/internal/model"
)

// BalanceReport describes one auto-balance run.
type BalanceReport struct {
	Items        []model.Item
	Before       float64
	After        float64
	Applied      []model.Strategy // strategies that changed the list
	WithinBudget bool
}

// AutoBalance returns a copy of items reduced toward budgetCap.
// See Balance for the procedure.
func AutoBalance(items []model.Item, budgetCap float64) []model.Item {
	return Balance(items, budgetCap).Items
}

// Balance generates suggestions once and applies them in order, stopping as
// soon as the plan is within budget. Suggestions are not regenerated between
// steps, so the result can still be over the cap. That is reported, not an
// error.
func Balance(items []model.Item, budgetCap float64) BalanceReport {
	plan := model.CloneItems(items)
	report := BalanceReport{Before: CalculateTotal(plan, false)}

	for _, s := range GetSuggestions(plan, budgetCap) {
		if s.Actionable() {
			next := Apply(s.Strategy, plan, budgetCap)
			if !sameItems(plan, next) {
				report.Applied = append(report.Applied, s.Strategy)
			}
			plan = next
		}
		if !overage(plan, budgetCap).IsPositive() {
			break
		}
	}

	report.Items = plan
	report.After = CalculateTotal(plan, false)
	report.WithinBudget = IsWithinBudget(report.After, budgetCap)
	return report
}

func sameItems(a, b []model.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
