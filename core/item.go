package core

import "fmt"

// Item is one selectable thing: an identifier plus its value and its two costs.
// Items are plain values; once added to a Catalog they are never modified.
type Item struct {
	// ID uniquely identifies the item within its Catalog.
	ID string

	// Value is what the item contributes to the objective (>= 0).
	Value int64

	// Weight is the first capacity cost (>= 0).
	Weight int64

	// Volume is the second capacity cost (>= 0).
	Volume int64
}

// Validate reports whether the item can be stored in a Catalog.
func (it Item) Validate() error {
	if it.ID == "" {
		return ErrEmptyItemID
	}
	if it.Value < 0 || it.Weight < 0 || it.Volume < 0 {
		return fmt.Errorf("item %q: %w", it.ID, ErrNegativeCost)
	}

	return nil
}

// Dominates reports whether it strictly beats other on every axis:
// lower weight, lower volume and higher value.
func (it Item) Dominates(other Item) bool {
	return it.Weight < other.Weight && it.Volume < other.Volume && it.Value > other.Value
}

// String renders the item as "id(value/weight/volume)".
func (it Item) String() string {
	return fmt.Sprintf("%s(%d/%d/%d)", it.ID, it.Value, it.Weight, it.Volume)
}
