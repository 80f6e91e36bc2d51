package budget

import (
	"github.com/theirongolddev/partyplan/internal/model"
)

// PlanTotal returns the plan's total over its visible items.
func PlanTotal(p model.Plan) float64 {
	return CalculateTotal(p.Items, p.PeanutFreeOnly)
}

// PlanSuggestions returns suggestions for the items the user sees.
func PlanSuggestions(p model.Plan, budgetCap float64) []model.Suggestion {
	return GetSuggestions(p.VisibleItems(), budgetCap)
}

// ApplyToPlan runs a strategy over the plan's visible items and merges the
// result back. Hidden peanut items keep their position and values.
func ApplyToPlan(p model.Plan, strategy model.Strategy, budgetCap float64) model.Plan {
	return mergeVisible(p, Apply(strategy, p.VisibleItems(), budgetCap))
}

// BalancePlan auto-balances the plan's visible items. The report's Items
// field holds the full merged list, hidden items included.
func BalancePlan(p model.Plan, budgetCap float64) (model.Plan, BalanceReport) {
	report := Balance(p.VisibleItems(), budgetCap)
	out := mergeVisible(p, report.Items)
	report.Items = model.CloneItems(out.Items)
	return out, report
}

// mergeVisible replaces the visible items of p, in order, with visible.
// Strategies keep the order of existing items and only append, so entries
// past the original visible count are appended at the end.
func mergeVisible(p model.Plan, visible []model.Item) model.Plan {
	out := p.Clone()
	if !p.PeanutFreeOnly {
		out.Items = model.CloneItems(visible)
		return out
	}

	items := make([]model.Item, 0, len(p.Items)+len(visible))
	k := 0
	for _, it := range p.Items {
		if it.ContainsPeanuts {
			items = append(items, it)
			continue
		}
		if k < len(visible) {
			items = append(items, visible[k])
			k++
		}
	}
	items = append(items, visible[k:]...)
	out.Items = items
	return out
}
