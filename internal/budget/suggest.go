package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/shopspring/decimal"
)

// DrinkMixID is the fixed id of the item the lemonade swap adds.
const DrinkMixID = "drink-mix"

const drinkMixPrice = 0.25

const (
	msgReduceTopCost = "Reduce quantity of top-cost items until within budget"
	msgSwapLemonade  = "Swap one lemonade concentrate for water or homemade drink mix"
)

// GetSuggestions returns ordered budget suggestions for items against
// budgetCap. It works on the list exactly as given; callers that apply the
// peanut filter pass the filtered list.
//
// Under or at the cap, the result is a single informational suggestion.
// Over the cap, it is reduce-top-cost followed by swap-lemonade when any
// item name mentions lemonade.
func GetSuggestions(items []model.Item, budgetCap float64) []model.Suggestion {
	total := CalculateTotal(items, false)

	if IsWithinBudget(total, budgetCap) {
		return []model.Suggestion{{
			Message: fmt.Sprintf("Good to go. Remaining $%.2f.", budgetCap-total),
			Cap:     budgetCap,
		}}
	}

	suggestions := []model.Suggestion{{
		Message:  msgReduceTopCost,
		Strategy: model.StrategyReduceTopCost,
		Cap:      budgetCap,
	}}

	if lemonadeIndex(items) >= 0 {
		suggestions = append(suggestions, model.Suggestion{
			Message:  msgSwapLemonade,
			Strategy: model.StrategySwapLemonade,
			Cap:      budgetCap,
		})
	}

	return suggestions
}

// Apply runs strategy against a copy of items. Informational and unknown
// strategies return an unchanged copy.
func Apply(strategy model.Strategy, items []model.Item, budgetCap float64) []model.Item {
	switch strategy {
	case model.StrategyReduceTopCost:
		return reduceTopCost(items, budgetCap)
	case model.StrategySwapLemonade:
		return swapLemonade(items)
	default:
		return model.CloneItems(items)
	}
}

// reduceTopCost walks lines by cost, highest first, taking one unit at a time
// off each until the overage is gone or the line is down to one unit.
// A single pass may leave the list over budget when most lines are at 1.
func reduceTopCost(items []model.Item, budgetCap float64) []model.Item {
	next := model.CloneItems(items)
	over := overage(next, budgetCap)

	order := make([]int, len(next))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return next[order[a]].LineCost() > next[order[b]].LineCost()
	})

	for _, idx := range order {
		it := &next[idx]
		price := decimal.NewFromFloat(it.Price)
		for it.Quantity > 1 && over.IsPositive() {
			it.Quantity--
			over = over.Sub(price)
		}
	}

	return next
}

// swapLemonade takes one unit off the first lemonade line and adds a unit of
// drink mix. A lemonade line already at zero, or priced at or below the
// drink mix, is left alone so the swap never raises the total.
func swapLemonade(items []model.Item) []model.Item {
	next := model.CloneItems(items)

	idx := lemonadeIndex(next)
	if idx < 0 || next[idx].Quantity <= 0 {
		return next
	}
	if decimal.NewFromFloat(next[idx].Price).LessThanOrEqual(decimal.NewFromFloat(drinkMixPrice)) {
		return next
	}

	next[idx].Quantity--
	return append(next, model.Item{
		ID:       drinkMixID(next),
		Name:     "Drink Mix / Water",
		Price:    drinkMixPrice,
		Quantity: 1,
	})
}

// drinkMixID returns DrinkMixID, or DrinkMixID-N when an earlier swap already
// used it. Ids must stay unique within a list.
func drinkMixID(items []model.Item) string {
	id := DrinkMixID
	for n := 2; model.FindItem(items, id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", DrinkMixID, n)
	}
	return id
}

func lemonadeIndex(items []model.Item) int {
	for i, it := range items {
		if strings.Contains(strings.ToLower(it.Name), "lemonade") {
			return i
		}
	}
	return -1
}
