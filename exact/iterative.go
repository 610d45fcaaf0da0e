package exact

import (
	"slices"

	"github.com/katalvlaran/knapsack/core"
)

// comboNode is one combination of the shared-structure power set: the item at
// pos appended to the combination parent. A nil *comboNode is the empty set.
type comboNode struct {
	pos    int
	parent *comboNode
}

// Iterative enumerates the power set with structural sharing and scores every
// combination against the original capacities.
type Iterative struct {
	opts Options
	best core.Solution
}

// NewIterative returns the shared-structure iterative solver.
func NewIterative(opts ...Option) *Iterative {
	return &Iterative{opts: newOptions(opts)}
}

// Solve builds all 2ⁿ combinations, then keeps the first one with the
// strictly highest value whose weight and volume sums fit initial.
//
// Construction order: the first item seeds [{k0}, {}]; every later item k
// appends, for each existing combination c in order, the combination c+{k}.
func (s *Iterative) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	if err := checkPowerSet(initial, cat, s.opts.MaxItems); err != nil {
		return core.Solution{}, err
	}

	n := cat.Len()
	combos := make([]*comboNode, 0, powerSetSize(n))
	for pos := 0; pos < n; pos++ {
		if len(combos) == 0 {
			combos = append(combos, &comboNode{pos: pos}, nil)
			continue
		}
		extend := make([]*comboNode, len(combos))
		for i, c := range combos {
			extend[i] = &comboNode{pos: pos, parent: c}
		}
		combos = append(combos, extend...)
	}

	sc := newScorer(initial)
	var bestNode *comboNode
	for _, c := range combos {
		var value, weight, volume int64
		for node := c; node != nil; node = node.parent {
			it := cat.At(node.pos)
			value += it.Value
			weight += it.Weight
			volume += it.Volume
		}
		if sc.improves(value, weight, volume) {
			bestNode = c
		}
	}

	s.best = core.Solution{Value: sc.bestValue, Choices: nodeChoices(cat, bestNode)}

	return s.best.Clone(), nil
}

// Best returns the result of the last Solve.
func (s *Iterative) Best() core.Solution { return s.best.Clone() }

// nodeChoices rebuilds the ordered ID list of a combination (item order).
func nodeChoices(cat *core.Catalog, c *comboNode) []string {
	var out []string
	for node := c; node != nil; node = node.parent {
		out = append(out, cat.At(node.pos).ID)
	}
	slices.Reverse(out)

	return out
}

// IterativeCopy enumerates the power set by duplicating the whole in-progress
// list before each item is added. Same optimum as Iterative, higher cost.
type IterativeCopy struct {
	opts Options
	best core.Solution
}

// NewIterativeCopy returns the copy-on-grow iterative solver.
func NewIterativeCopy(opts ...Option) *IterativeCopy {
	return &IterativeCopy{opts: newOptions(opts)}
}

// Solve builds all 2ⁿ combinations with a full deep copy per item, then scores
// them exactly like Iterative.
//
// Construction order: the first item seeds [{}, {k0}]; every later item k
// deep-copies the list and appends each copy extended with k.
func (s *IterativeCopy) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	if err := checkPowerSet(initial, cat, s.opts.MaxItems); err != nil {
		return core.Solution{}, err
	}

	n := cat.Len()
	combos := make([][]int, 0, powerSetSize(n))
	for pos := 0; pos < n; pos++ {
		if len(combos) == 0 {
			combos = append(combos, []int{}, []int{pos})
			continue
		}
		for _, c := range deepCopy(combos) {
			combos = append(combos, append(c, pos))
		}
	}

	sc := newScorer(initial)
	var bestCombo []int
	for _, c := range combos {
		var value, weight, volume int64
		for _, pos := range c {
			it := cat.At(pos)
			value += it.Value
			weight += it.Weight
			volume += it.Volume
		}
		if sc.improves(value, weight, volume) {
			bestCombo = c
		}
	}

	var choices []string
	for _, pos := range bestCombo {
		choices = append(choices, cat.At(pos).ID)
	}
	s.best = core.Solution{Value: sc.bestValue, Choices: choices}

	return s.best.Clone(), nil
}

// Best returns the result of the last Solve.
func (s *IterativeCopy) Best() core.Solution { return s.best.Clone() }

// deepCopy returns an independent copy of every combination in combos.
func deepCopy(combos [][]int) [][]int {
	out := make([][]int, len(combos))
	for i, c := range combos {
		out[i] = slices.Clone(c)
	}

	return out
}

// scorer tracks the best complete combination. Feasibility is checked once
// per combination against the original capacities; nothing is pruned early.
type scorer struct {
	weightCap int64
	volumeCap int64
	bestValue int64
}

func newScorer(initial core.Capacity) *scorer {
	return &scorer{weightCap: initial.Weight, volumeCap: initial.Volume}
}

// improves records the combination and returns true when it strictly beats
// the best value and fits both capacities.
func (s *scorer) improves(value, weight, volume int64) bool {
	if value > s.bestValue && s.weightCap-weight >= 0 && s.volumeCap-volume >= 0 {
		s.bestValue = value
		return true
	}

	return false
}

// checkPowerSet resolves the enumeration limit (DefaultPowerSetItems when
// unset, never above maxPowerSetItems) and runs checkInputs with it.
func checkPowerSet(initial core.Capacity, cat *core.Catalog, limit int) error {
	if limit == 0 {
		limit = DefaultPowerSetItems
	}
	limit = min(limit, maxPowerSetItems)

	return checkInputs(initial, cat, limit)
}

// powerSetSize returns 2ⁿ, or 0 for an empty catalog.
func powerSetSize(n int) int {
	if n == 0 {
		return 0
	}

	return 1 << n
}
