package budget

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/partyplan/internal/model"
)

func TestGetSuggestions_UnderBudget(t *testing.T) {
	items := []model.Item{{ID: "a", Name: "Apples", Price: 0.5, Quantity: 12}}

	got := GetSuggestions(items, 30)
	if len(got) != 1 {
		t.Fatalf("len(suggestions) = %d, want 1", len(got))
	}
	if got[0].Actionable() {
		t.Fatalf("under-budget suggestion is actionable: %+v", got[0])
	}
	if want := "Good to go. Remaining $24.00."; got[0].Message != want {
		t.Fatalf("message = %q, want %q", got[0].Message, want)
	}
}

func TestGetSuggestions_ExactlyAtCap(t *testing.T) {
	items := []model.Item{{ID: "a", Price: 10, Quantity: 3}}
	got := GetSuggestions(items, 30)
	if len(got) != 1 || got[0].Actionable() {
		t.Fatalf("at-cap suggestions = %+v, want one informational", got)
	}
	if want := "Good to go. Remaining $0.00."; got[0].Message != want {
		t.Fatalf("message = %q, want %q", got[0].Message, want)
	}
}

func TestGetSuggestions_OverBudgetOrder(t *testing.T) {
	tests := []struct {
		name  string
		items []model.Item
		want  []model.Strategy
	}{
		{
			name:  "no lemonade",
			items: []model.Item{{ID: "a", Name: "Cake", Price: 20, Quantity: 2}},
			want:  []model.Strategy{model.StrategyReduceTopCost},
		},
		{
			name: "lemonade any case",
			items: []model.Item{
				{ID: "a", Name: "Cake", Price: 20, Quantity: 2},
				{ID: "l", Name: "Pink LEMONADE mix", Price: 1.25, Quantity: 4},
			},
			want: []model.Strategy{model.StrategyReduceTopCost, model.StrategySwapLemonade},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestions(tt.items, 30)
			var strategies []model.Strategy
			for _, s := range got {
				strategies = append(strategies, s.Strategy)
				if s.Cap != 30 {
					t.Errorf("suggestion cap = %v, want 30", s.Cap)
				}
			}
			if !reflect.DeepEqual(strategies, tt.want) {
				t.Fatalf("strategies = %v, want %v", strategies, tt.want)
			}
		})
	}
}

func TestReduceTopCost_StableTiesAndOrder(t *testing.T) {
	items := []model.Item{
		{ID: "cheap", Price: 1, Quantity: 3},
		{ID: "a", Price: 5, Quantity: 2},
		{ID: "b", Price: 5, Quantity: 2},
	}
	// total 23, cap 18: over 5, one unit off the first of the tied lines.
	got := Apply(model.StrategyReduceTopCost, items, 18)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"cheap", "a", "b"}) {
		t.Fatalf("order = %v, want original order", ids)
	}
	if got[1].Quantity != 1 {
		t.Errorf("a quantity = %d, want 1", got[1].Quantity)
	}
	if got[2].Quantity != 2 {
		t.Errorf("b quantity = %d, want 2 (tie keeps original order)", got[2].Quantity)
	}
	if got[0].Quantity != 3 {
		t.Errorf("cheap quantity = %d, want 3", got[0].Quantity)
	}
}

func TestReduceTopCost_NeverBelowOne(t *testing.T) {
	items := []model.Item{
		{ID: "a", Price: 10, Quantity: 5},
		{ID: "b", Price: 3, Quantity: 4},
	}
	got := Apply(model.StrategyReduceTopCost, items, 0)
	for _, it := range got {
		if it.Quantity != 1 {
			t.Errorf("%s quantity = %d, want 1", it.ID, it.Quantity)
		}
	}
}

func TestSwapLemonade(t *testing.T) {
	items := []model.Item{
		{ID: "cups", Name: "Cups", Price: 3, Quantity: 1},
		{ID: "lemonade", Name: "Frozen Lemonade Concentrate", Price: 1.25, Quantity: 4},
	}
	got := Apply(model.StrategySwapLemonade, items, 0)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Quantity != 3 {
		t.Errorf("lemonade quantity = %d, want 3", got[1].Quantity)
	}
	want := model.Item{ID: DrinkMixID, Name: "Drink Mix / Water", Price: 0.25, Quantity: 1}
	if got[2] != want {
		t.Errorf("appended = %+v, want %+v", got[2], want)
	}
	if items[1].Quantity != 4 || len(items) != 2 {
		t.Fatalf("input modified: %+v", items)
	}
}

func TestSwapLemonade_ZeroQuantityIsNoop(t *testing.T) {
	items := []model.Item{
		{ID: "lemonade", Name: "Lemonade", Price: 1.25, Quantity: 0},
		{ID: "lemonade2", Name: "More Lemonade", Price: 1.25, Quantity: 3},
	}
	got := Apply(model.StrategySwapLemonade, items, 0)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("Apply = %+v, want unchanged copy", got)
	}
}

func TestSwapLemonade_RepeatKeepsIDsUnique(t *testing.T) {
	items := []model.Item{
		{ID: "lemonade", Name: "Lemonade", Price: 1.25, Quantity: 3},
	}
	once := Apply(model.StrategySwapLemonade, items, 0)
	twice := Apply(model.StrategySwapLemonade, once, 0)

	seen := make(map[string]bool)
	for _, it := range twice {
		if seen[it.ID] {
			t.Fatalf("duplicate id %q in %+v", it.ID, twice)
		}
		seen[it.ID] = true
	}
	if len(twice) != 3 || twice[2].ID != "drink-mix-2" {
		t.Fatalf("second swap = %+v, want drink-mix-2 appended", twice)
	}
}

func TestApply_InformationalReturnsCopy(t *testing.T) {
	items := []model.Item{{ID: "a", Price: 1, Quantity: 1}}
	got := Apply(model.StrategyNone, items, 10)
	got[0].Quantity = 99
	if items[0].Quantity != 1 {
		t.Fatal("Apply returned a slice aliasing the input")
	}
}

func TestGetSuggestions_CentRoundedTotal(t *testing.T) {
	// 0.1 + 0.2 is 0.30000000000000004 as a float sum
	items := []model.Item{
		{ID: "a", Name: "A", Price: 0.1, Quantity: 1},
		{ID: "b", Name: "B", Price: 0.2, Quantity: 1},
	}

	got := GetSuggestions(items, 0.3)
	if len(got) != 1 || got[0].Actionable() {
		t.Fatalf("GetSuggestions = %+v, want one informational suggestion", got)
	}
	if want := "Good to go. Remaining $0.00."; got[0].Message != want {
		t.Fatalf("Message = %q, want %q", got[0].Message, want)
	}
}

func TestReduceTopCost_StopsAtExactCap(t *testing.T) {
	items := []model.Item{{ID: "a", Name: "A", Price: 0.1, Quantity: 4}}

	out := Apply(model.StrategyReduceTopCost, items, 0.3)
	if out[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", out[0].Quantity)
	}
	if total := CalculateTotal(out, false); total != 0.3 {
		t.Fatalf("total = %v, want 0.3", total)
	}
}

func TestSwapLemonade_CheapLemonadeIsNoop(t *testing.T) {
	items := []model.Item{
		{ID: "lemonade", Name: "Lemonade", Price: 0.1, Quantity: 1},
		{ID: "x", Name: "X", Price: 10, Quantity: 1},
	}

	out := Apply(model.StrategySwapLemonade, items, 5)
	if !reflect.DeepEqual(out, items) {
		t.Fatalf("swap changed list %+v -> %+v", items, out)
	}

	// Equal to the drink mix price is no saving either
	items[0].Price = 0.25
	if out := Apply(model.StrategySwapLemonade, items, 5); !reflect.DeepEqual(out, items) {
		t.Fatalf("swap at drink mix price changed list to %+v", out)
	}
}
