package core

import "fmt"

// Catalog is an insertion-ordered mapping from item ID to Item.
//
// Insertion order is the enumeration order used by every solver: it decides
// which optimal subset is found first on ties, never whether an optimum is found.
// A Catalog is built once (by a loader or a builder) and then only read; solvers
// hold a read reference and never mutate it. It is not safe to call Add while a
// solver is running on the same Catalog.
type Catalog struct {
	items []Item         // items in insertion order
	index map[string]int // ID -> position in items
}

// NewCatalog builds a Catalog from items, preserving their order.
// The first invalid or duplicate item aborts construction.
//
// Complexity: O(n) time, O(n) space.
func NewCatalog(items ...Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if err := c.Add(it); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends it to the catalog.
//
// Errors: ErrEmptyItemID, ErrNegativeCost, ErrDuplicateItem.
func (c *Catalog) Add(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, ok := c.index[it.ID]; ok {
		return fmt.Errorf("item %q: %w", it.ID, ErrDuplicateItem)
	}
	c.index[it.ID] = len(c.items)
	c.items = append(c.items, it)

	return nil
}

// Len returns the number of items. A nil Catalog has length 0.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.items)
}

// At returns the i-th item in insertion order. It panics if i is out of range,
// like slice indexing.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Item looks an item up by ID.
func (c *Catalog) Item(id string) (Item, bool) {
	i, ok := c.Index(id)
	if !ok {
		return Item{}, false
	}

	return c.items[i], true
}

// Index returns the insertion position of id.
func (c *Catalog) Index(id string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[id]

	return i, ok
}

// IDs returns a fresh slice of all IDs in insertion order.
func (c *Catalog) IDs() []string {
	ids := make([]string, c.Len())
	for i := range ids {
		ids[i] = c.items[i].ID
	}

	return ids
}

// Items returns a copy of all items in insertion order.
func (c *Catalog) Items() []Item {
	out := make([]Item, c.Len())
	if c != nil {
		copy(out, c.items)
	}

	return out
}

// Totals sums value, weight and volume over the whole catalog.
func (c *Catalog) Totals() (value, weight, volume int64) {
	for i := 0; i < c.Len(); i++ {
		value += c.items[i].Value
		weight += c.items[i].Weight
		volume += c.items[i].Volume
	}

	return value, weight, volume
}
