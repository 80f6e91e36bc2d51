package budget

import (
	"testing"

	"github.com/theirongolddev/partyplan/internal/model"
)

func TestCalculateTotal_SumsPriceTimesQuantity(t *testing.T) {
	items := []model.Item{
		{ID: "a", Name: "A", Price: 1.25, Quantity: 2},
		{ID: "b", Name: "B", Price: 0.5, Quantity: 3},
	}
	if got := CalculateTotal(items, false); got != 4.0 {
		t.Fatalf("CalculateTotal = %v, want 4.0", got)
	}
}

func TestCalculateTotal_PeanutFilter(t *testing.T) {
	items := []model.Item{
		{ID: "safe", Name: "Safe", Price: 2, Quantity: 1},
		{ID: "nuts", Name: "Nuts", Price: 5, Quantity: 1, ContainsPeanuts: true},
	}
	if got := CalculateTotal(items, true); got != 2 {
		t.Errorf("peanut-free total = %v, want 2", got)
	}
	if got := CalculateTotal(items, false); got != 7 {
		t.Errorf("full total = %v, want 7", got)
	}
}

func TestCalculateTotal_EmptyAndRounding(t *testing.T) {
	if got := CalculateTotal(nil, false); got != 0 {
		t.Errorf("empty total = %v, want 0", got)
	}

	// 0.1 * 3 is 0.30000000000000004 in float math.
	items := []model.Item{{ID: "x", Price: 0.1, Quantity: 3}}
	if got := CalculateTotal(items, false); got != 0.3 {
		t.Errorf("total = %v, want 0.3", got)
	}

	// Half-cent rounds away from zero.
	items = []model.Item{{ID: "y", Price: 0.125, Quantity: 1}}
	if got := CalculateTotal(items, false); got != 0.13 {
		t.Errorf("total = %v, want 0.13", got)
	}
}

func TestIsWithinBudget(t *testing.T) {
	tests := []struct {
		total float64
		want  bool
	}{
		{29.99, true},
		{30, true},
		{30.01, false},
	}
	for _, tt := range tests {
		if got := IsWithinBudget(tt.total, 30); got != tt.want {
			t.Errorf("IsWithinBudget(%v, 30) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestFilterPeanutFree(t *testing.T) {
	items := []model.Item{
		{ID: "a", ContainsPeanuts: true},
		{ID: "b"},
		{ID: "c", ContainsPeanuts: true},
	}
	got := FilterPeanutFree(items)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("FilterPeanutFree = %+v, want only b", got)
	}
	if len(items) != 3 {
		t.Fatalf("input modified: len = %d", len(items))
	}
}

func TestPerStudent(t *testing.T) {
	if got := PerStudent(27.99, 24); got != 1.17 {
		t.Errorf("PerStudent(27.99, 24) = %v, want 1.17", got)
	}
	if got := PerStudent(10, 0); got != 0 {
		t.Errorf("PerStudent with no students = %v, want 0", got)
	}
}
