package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/core"
)

// Load parses an instance from r and returns its catalog and the container's
// initial Capacity State.
//
// Identifiers must fit the one-per-line solution format: they may not contain
// a line break or start with "points:".
//
// Errors (wrapped with the line number where relevant): ErrMissingHeader,
// ErrMalformedRow, ErrNotInteger, ErrMissingKnapsack, ErrDuplicateKnapsack,
// and core catalog errors (duplicate IDs, negative costs).
func Load(r io.Reader) (*core.Catalog, core.Capacity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	// 1. Header is skipped whatever it contains.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.Capacity{}, ErrMissingHeader
		}
		return nil, core.Capacity{}, fmt.Errorf("csvio: header: %w", err)
	}

	var (
		cat     = &core.Catalog{}
		initial core.Capacity
		found   bool
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, core.Capacity{}, fmt.Errorf("csvio: %w", err)
		}
		line, _ := cr.FieldPos(0)

		// 2. Parse "id, value, weight, volume".
		if len(rec) != 4 {
			return nil, core.Capacity{}, fmt.Errorf("line %d: %d fields: %w", line, len(rec), ErrMalformedRow)
		}
		id := strings.TrimSpace(rec[0])
		if strings.ContainsAny(id, "\r\n") || strings.HasPrefix(id, pointsPrefix) {
			return nil, core.Capacity{}, fmt.Errorf("line %d: identifier %q: %w", line, id, ErrMalformedRow)
		}
		var nums [3]int64
		for i := range nums {
			field := strings.TrimSpace(rec[i+1])
			nums[i], err = strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, core.Capacity{}, fmt.Errorf("line %d: %q: %w", line, field, ErrNotInteger)
			}
		}

		// 3. The container row sets the initial state; every other row is an item.
		if id == KnapsackID {
			if found {
				return nil, core.Capacity{}, fmt.Errorf("line %d: %w", line, ErrDuplicateKnapsack)
			}
			found = true
			initial = core.Capacity{Value: nums[0], Weight: nums[1], Volume: nums[2]}
			continue
		}
		it := core.Item{ID: id, Value: nums[0], Weight: nums[1], Volume: nums[2]}
		if err = cat.Add(it); err != nil {
			return nil, core.Capacity{}, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if !found {
		return nil, core.Capacity{}, ErrMissingKnapsack
	}
	if err := initial.Validate(); err != nil {
		return nil, core.Capacity{}, fmt.Errorf("knapsack row: %w", err)
	}

	return cat, initial, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*core.Catalog, core.Capacity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Capacity{}, err
	}
	defer f.Close()

	cat, initial, err := Load(f)
	if err != nil {
		return nil, core.Capacity{}, fmt.Errorf("%s: %w", path, err)
	}

	return cat, initial, nil
}
