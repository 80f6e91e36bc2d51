// Package templates holds the built-in party templates and the default plan.
package templates

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/model"
)

// Template is a named, ready-made shopping list.
type Template struct {
	ID    string
	Name  string
	Notes string
	Items []model.Item
}

var all = []Template{
	{
		ID:    "peanut-free-28",
		Name:  "Peanut‑Free Essentials ($28)",
		Notes: "Balanced plan under $30; nut-free items.",
		Items: []model.Item{
			{ID: "pretzels", Name: "Pretzel Twists (15 oz)", Price: 2.5, Quantity: 2},
			{ID: "apples", Name: "Apples (12 medium)", Price: 0.5, Quantity: 12},
			{ID: "lemonade", Name: "Frozen Lemonade Concentrate", Price: 1.25, Quantity: 4},
			{ID: "cups", Name: "9 oz Cups (50 ct)", Price: 3.0, Quantity: 1},
			{ID: "plates", Name: "Small Plates (24 ct)", Price: 2.5, Quantity: 1},
			{ID: "napkins", Name: "Napkins (100 ct)", Price: 1.5, Quantity: 1},
			{ID: "ice", Name: "Bag of Ice (7 lb)", Price: 2.0, Quantity: 1},
			{ID: "wipes", Name: "Hand Wipes / Sanitizer", Price: 2.99, Quantity: 1},
		},
	},
	{
		ID:    "fruit-crackers-29",
		Name:  "Fruit & Crackers ($29)",
		Notes: "Adds fruit variety; still under cap.",
		Items: []model.Item{
			{ID: "crackers", Name: "Butter-Free Crackers (13 oz)", Price: 2.25, Quantity: 2},
			{ID: "apples", Name: "Apples (12 medium)", Price: 0.5, Quantity: 12},
			{ID: "grapes", Name: "Seedless Grapes (2 lb)", Price: 3.99, Quantity: 1},
			{ID: "lemonade", Name: "Frozen Lemonade Concentrate", Price: 1.25, Quantity: 4},
			{ID: "cups", Name: "9 oz Cups (50 ct)", Price: 3.0, Quantity: 1},
			{ID: "plates", Name: "Small Plates (24 ct)", Price: 2.5, Quantity: 1},
			{ID: "napkins", Name: "Napkins (100 ct)", Price: 1.5, Quantity: 1},
			{ID: "ice", Name: "Bag of Ice (7 lb)", Price: 2.0, Quantity: 1},
		},
	},
}

// DefaultID is the template the default item list comes from.
const DefaultID = "peanut-free-28"

// All returns copies of every built-in template, in display order.
func All() []Template {
	out := make([]Template, len(all))
	for i, t := range all {
		out[i] = t
		out[i].Items = model.CloneItems(t.Items)
	}
	return out
}

// ByID returns a copy of the template with the given id.
func ByID(id string) (Template, error) {
	for _, t := range all {
		if t.ID == id {
			t.Items = model.CloneItems(t.Items)
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", model.ErrTemplateNotFound, id)
}

// DefaultItems returns the starting shopping list.
func DefaultItems() []model.Item {
	t, _ := ByID(DefaultID)
	return t.Items
}

// scheduleBlocks lists the default activities as [from, to] minute ranges.
var scheduleBlocks = []struct {
	from, to int
	text     string
}{
	{0, 4, "Welcome, sanitize hands, find seats"},
	{5, 9, "Ground rules and assign helpers"},
	{10, 19, "Snack 1: Pretzels"},
	{20, 29, "Snack 2: Apple halves + Lemonade"},
	{30, 39, "Game 1: Freeze Dance"},
	{40, 49, "Game 2: Four Corners"},
	{50, 54, "Group photo + thank yous"},
	{55, 59, "Cleanup: tables, trash, sweep"},
}

// DefaultSchedule returns the default 60-minute activity schedule.
func DefaultSchedule() []model.ScheduleSlot {
	slots := model.NormalizeSchedule(nil)
	for _, b := range scheduleBlocks {
		for m := b.from; m <= b.to; m++ {
			slots[m].Text = b.text
		}
	}
	return slots
}

// DefaultPlan returns the plan a fresh install or a reset starts from.
func DefaultPlan() model.Plan {
	return model.Plan{
		Items:          DefaultItems(),
		Schedule:       DefaultSchedule(),
		PeanutFreeOnly: true,
	}
}
