package budget

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/partyplan/internal/model"
)

func filteredPlan() model.Plan {
	return model.Plan{
		Items: []model.Item{
			{ID: "pb", Name: "Peanut Bars", Price: 20, Quantity: 2, ContainsPeanuts: true},
			{ID: "cake", Name: "Cake", Price: 10, Quantity: 3},
			{ID: "lem", Name: "Lemonade", Price: 1.25, Quantity: 4},
		},
		PeanutFreeOnly: true,
	}
}

func TestPlanTotal_UsesFilter(t *testing.T) {
	p := filteredPlan()
	if got := PlanTotal(p); got != 35 {
		t.Fatalf("PlanTotal = %v, want 35", got)
	}
	p.PeanutFreeOnly = false
	if got := PlanTotal(p); got != 75 {
		t.Fatalf("PlanTotal unfiltered = %v, want 75", got)
	}
}

func TestApplyToPlan_KeepsHiddenItems(t *testing.T) {
	p := filteredPlan()
	got := ApplyToPlan(p, model.StrategySwapLemonade, 30)

	want := []model.Item{
		p.Items[0],
		p.Items[1],
		{ID: "lem", Name: "Lemonade", Price: 1.25, Quantity: 3},
		{ID: DrinkMixID, Name: "Drink Mix / Water", Price: 0.25, Quantity: 1},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Fatalf("Items = %+v, want %+v", got.Items, want)
	}
	if p.Items[2].Quantity != 4 {
		t.Fatal("input plan was mutated")
	}
}

func TestBalancePlan_ReducesOnlyVisible(t *testing.T) {
	p := filteredPlan()
	out, report := BalancePlan(p, 30)

	if out.Items[0] != p.Items[0] {
		t.Fatalf("hidden item = %+v, want untouched", out.Items[0])
	}
	if !report.WithinBudget {
		t.Fatalf("WithinBudget = false, after = %v", report.After)
	}
	if got := PlanTotal(out); got > 30 {
		t.Fatalf("PlanTotal = %v, want <= 30", got)
	}
	if !reflect.DeepEqual(report.Items, out.Items) {
		t.Fatal("report items differ from merged plan")
	}
}

func TestBalancePlan_UnfilteredMatchesBalance(t *testing.T) {
	p := filteredPlan()
	p.PeanutFreeOnly = false
	out, _ := BalancePlan(p, 30)
	if want := AutoBalance(p.Items, 30); !reflect.DeepEqual(out.Items, want) {
		t.Fatalf("Items = %+v, want %+v", out.Items, want)
	}
}
