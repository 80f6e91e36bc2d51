package model

import "fmt"

// Plan is the full persisted state of one party.
type Plan struct {
	Items          []Item
	Schedule       []ScheduleSlot
	PeanutFreeOnly bool
}

// VisibleItems returns the items the user currently works with: the
// peanut-free subset when the filter is on, otherwise a copy of all items.
func (p Plan) VisibleItems() []Item {
	if !p.PeanutFreeOnly {
		return CloneItems(p.Items)
	}
	out := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		if !it.ContainsPeanuts {
			out = append(out, it)
		}
	}
	return out
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	sched := make([]ScheduleSlot, len(p.Schedule))
	copy(sched, p.Schedule)
	return Plan{
		Items:          CloneItems(p.Items),
		Schedule:       sched,
		PeanutFreeOnly: p.PeanutFreeOnly,
	}
}

// AddItem validates it and puts it at the top of the list, assigning a
// fresh id when empty.
func (p *Plan) AddItem(it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	if it.ID == "" {
		it.ID = NewItemID(p.Items)
	}
	if FindItem(p.Items, it.ID) >= 0 {
		return Item{}, fmt.Errorf("%w: id %q already used", ErrInvalidItem, it.ID)
	}
	items := make([]Item, 0, len(p.Items)+1)
	items = append(items, it)
	p.Items = append(items, p.Items...)
	return it, nil
}

// UpdateItem applies edit to the item with the given id. The edited item
// must still validate; on error the plan is unchanged.
func (p *Plan) UpdateItem(id string, edit func(*Item)) (Item, error) {
	idx := FindItem(p.Items, id)
	if idx < 0 {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	it := p.Items[idx]
	edit(&it)
	it.ID = id
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	items := CloneItems(p.Items)
	items[idx] = it
	p.Items = items
	return it, nil
}

// RemoveItem deletes the item with the given id.
func (p *Plan) RemoveItem(id string) error {
	idx := FindItem(p.Items, id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	items := make([]Item, 0, len(p.Items)-1)
	items = append(items, p.Items[:idx]...)
	p.Items = append(items, p.Items[idx+1:]...)
	return nil
}

// SetSlot replaces the text of one schedule minute.
func (p *Plan) SetSlot(minute int, text string) error {
	if minute < 0 || minute >= ScheduleMinutes {
		return fmt.Errorf("%w: %d", ErrBadMinute, minute)
	}
	sched := NormalizeSchedule(p.Schedule)
	sched[minute].Text = text
	p.Schedule = sched
	return nil
}
