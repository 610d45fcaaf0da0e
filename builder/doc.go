// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// Package builder generates knapsack instances: random catalogs for tests,
// benchmarks and the "generate" command, plus the small reference fixture.
//
// Contract:
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Option constructors panic on meaningless input (negative ranges, nil RNG,
//     nil ID scheme); generators never panic and return sentinel errors.
//   - Determinism: the same options and seed give the same catalog.
//
// Entry points:
//
//	cat, initial, err := builder.RandomCatalog(20, builder.WithSeed(7))
//	cat, initial := builder.Fixture()
//
// Errors:
//
//   - ErrTooFewItems     n < 0
//   - ErrNeedRandSource  RandomCatalog without WithSeed/WithRand
//   - ErrBadRange        a value/weight/volume range with min > max
package builder
