package core

import "errors"

// Sentinel errors for catalog, capacity and solution handling.
// Callers branch with errors.Is; context is attached with %w at API boundaries.
var (
	// ErrNilCatalog is returned when a solver receives a nil *Catalog.
	ErrNilCatalog = errors.New("core: catalog is nil")

	// ErrEmptyItemID indicates an item without an identifier.
	ErrEmptyItemID = errors.New("core: item ID is empty")

	// ErrDuplicateItem indicates the identifier is already present in the catalog.
	ErrDuplicateItem = errors.New("core: duplicate item ID")

	// ErrNegativeCost indicates a negative value, weight or volume on an item.
	ErrNegativeCost = errors.New("core: negative item value or cost")

	// ErrNegativeCapacity indicates an initial capacity with negative weight or volume.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrNonZeroStart indicates an initial capacity whose accumulated value is not zero.
	ErrNonZeroStart = errors.New("core: initial capacity must carry zero value")

	// ErrUnknownItem indicates a solution references an ID missing from the catalog.
	ErrUnknownItem = errors.New("core: unknown item in solution")

	// ErrDuplicateChoice indicates an item selected more than once.
	ErrDuplicateChoice = errors.New("core: item chosen more than once")

	// ErrInfeasibleSolution indicates chosen items exceed the weight or volume capacity.
	ErrInfeasibleSolution = errors.New("core: solution exceeds capacity")

	// ErrValueMismatch indicates the reported value differs from the sum of chosen values.
	ErrValueMismatch = errors.New("core: solution value does not match chosen items")
)
