package core

// Capacity is the Capacity State of a partially filled container: the value
// accumulated so far and the weight and volume still available.
//
// Capacity is a value type. Every operation returns a new Capacity and leaves
// the receiver untouched, so search branches and trials can never observe each
// other's state.
type Capacity struct {
	// Value accumulated by the items added so far.
	Value int64

	// Weight is the remaining weight capacity.
	Weight int64

	// Volume is the remaining volume capacity.
	Volume int64
}

// NewCapacity returns the initial state of an empty container with the given
// weight and volume capacities.
func NewCapacity(weight, volume int64) Capacity {
	return Capacity{Weight: weight, Volume: volume}
}

// Feasible reports whether both remaining capacities are non-negative.
func (c Capacity) Feasible() bool {
	return c.Weight >= 0 && c.Volume >= 0
}

// Fits reports whether it can be added without exceeding either capacity.
func (c Capacity) Fits(it Item) bool {
	return c.Weight-it.Weight >= 0 && c.Volume-it.Volume >= 0
}

// Add returns the state after tentatively adding it. The result may be
// infeasible; callers check Feasible (or Fits beforehand).
func (c Capacity) Add(it Item) Capacity {
	return Capacity{
		Value:  c.Value + it.Value,
		Weight: c.Weight - it.Weight,
		Volume: c.Volume - it.Volume,
	}
}

// Swap returns the state after replacing out with in: out's costs are credited
// back, in's costs are debited and the value is recomputed.
func (c Capacity) Swap(out, in Item) Capacity {
	return Capacity{
		Value:  c.Value - out.Value + in.Value,
		Weight: c.Weight + out.Weight - in.Weight,
		Volume: c.Volume + out.Volume - in.Volume,
	}
}

// Validate checks that c is a usable initial state: zero value and
// non-negative capacities. A zero capacity is valid.
func (c Capacity) Validate() error {
	if c.Weight < 0 || c.Volume < 0 {
		return ErrNegativeCapacity
	}
	if c.Value != 0 {
		return ErrNonZeroStart
	}

	return nil
}
