package csvio

import "errors"

// KnapsackID is the reserved identifier of the container row.
const KnapsackID = "knapsack"

// pointsPrefix starts the first line of a written solution.
const pointsPrefix = "points:"

// defaultHeader is written by WriteCatalog.
const defaultHeader = "item, points, weight, volume"

var (
	// ErrMalformedRow indicates a row without exactly four fields, or an
	// identifier the solution format cannot carry.
	ErrMalformedRow = errors.New("csvio: malformed row")

	// ErrNotInteger indicates a numeric field that does not parse as an integer.
	ErrNotInteger = errors.New("csvio: field is not an integer")

	// ErrMissingKnapsack indicates the input has no container row.
	ErrMissingKnapsack = errors.New("csvio: missing knapsack row")

	// ErrDuplicateKnapsack indicates more than one container row.
	ErrDuplicateKnapsack = errors.New("csvio: duplicate knapsack row")

	// ErrMissingHeader indicates empty input.
	ErrMissingHeader = errors.New("csvio: missing header line")

	// ErrMalformedSolution indicates solution text without a points line.
	ErrMalformedSolution = errors.New("csvio: malformed solution")
)
