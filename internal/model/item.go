// Package model defines domain types for partyplan shopping lists and schedules.
package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Item is one purchasable line in the shopping list.
type Item struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	ContainsPeanuts bool    `json:"containsPeanuts,omitempty"`
}

// LineCost returns price * quantity.
func (i Item) LineCost() float64 {
	return i.Price * float64(i.Quantity)
}

// CloneItems returns a fresh slice holding copies of items.
// A nil input yields an empty, non-nil slice.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// FindItem returns the index of the item with the given id, or -1.
func FindItem(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the field constraints the budget core relies on.
func (i Item) Validate() error {
	if math.IsNaN(i.Price) || math.IsInf(i.Price, 0) || i.Price < 0 {
		return fmt.Errorf("%w: price %v must be a non-negative number", ErrInvalidItem, i.Price)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d must not be negative", ErrInvalidItem, i.Quantity)
	}
	return nil
}

// NewItemID returns a short random id not used by any of items.
func NewItemID(items []Item) string {
	for {
		id := uuid.NewString()[:8]
		if FindItem(items, id) < 0 {
			return id
		}
	}
}
