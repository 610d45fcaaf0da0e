package heuristic

import (
	"math/rand"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/knapsack/core"
)

// trial is the state of one greedy fill. Every trial owns a fresh trial value;
// nothing is cleared and reused across trials.
type trial struct {
	cat     *core.Catalog
	rng     *rand.Rand
	order   []int           // draw buffer; order[:drawn] are the items tried so far
	state   core.Capacity   // current Capacity State
	choices []int           // catalog positions in the order they were added
	chosen  *roaring.Bitmap // membership of choices
	swaps   int
}

func newTrial(cat *core.Catalog, initial core.Capacity, rng *rand.Rand) *trial {
	n := cat.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return &trial{
		cat:    cat,
		rng:    rng,
		order:  order,
		state:  initial,
		chosen: roaring.New(),
	}
}

// fill draws items uniformly among those not yet tried (partial Fisher-Yates)
// and adds each one that fits. It returns true when a drawn item did not fit;
// that item is discarded and the trial stops. It returns false when every
// item was tried.
//
// Complexity: O(n) time.
func (t *trial) fill() bool {
	n := len(t.order)
	for i := 0; i < n; i++ {
		j := i + t.rng.Intn(n-i)
		t.order[i], t.order[j] = t.order[j], t.order[i]

		pos := t.order[i]
		it := t.cat.At(pos)
		if !t.state.Fits(it) {
			return true
		}
		t.state = t.state.Add(it)
		t.choices = append(t.choices, pos)
		t.chosen.Add(uint32(pos))
	}

	return false
}

// improve runs the replacement pass. The candidate set is every catalog item
// outside the choice list at the moment the pass starts, visited in catalog
// order. Each candidate is tested against one incumbent drawn uniformly from
// the current choice list and swapped in when it dominates that incumbent.
// With an empty choice list there is no incumbent and the candidate is skipped.
//
// A swap frees more weight and volume than it consumes, so the state stays
// feasible.
func (t *trial) improve() {
	unused := roaring.Flip(t.chosen, 0, uint64(t.cat.Len()))

	it := unused.Iterator()
	for it.HasNext() {
		cand := int(it.Next())
		if len(t.choices) == 0 {
			continue
		}

		k := t.rng.Intn(len(t.choices))
		incumbent := t.choices[k]
		in, out := t.cat.At(cand), t.cat.At(incumbent)
		if !in.Dominates(out) {
			continue
		}

		t.state = t.state.Swap(out, in)
		t.choices = append(slices.Delete(t.choices, k, k+1), cand)
		t.chosen.Remove(uint32(incumbent))
		t.chosen.Add(uint32(cand))
		t.swaps++
	}
}

// solution converts the trial's choice list into a Solution.
func (t *trial) solution(base int64) core.Solution {
	ids := make([]string, len(t.choices))
	for i, pos := range t.choices {
		ids[i] = t.cat.At(pos).ID
	}

	return core.Solution{Value: t.state.Value - base, Choices: ids}
}
