// Package cost implements the three cost-assignment strategies of
// spec.md §4.6, keyed by the same integer parameter the façade's
// strategy_param uses for strategies 1-3:
//
//  1. Fixed      — every element costs 1; path cost reduces to depth.
//  2. UniqueRandom — a uniform permutation of {1,...,|B|}, one per element,
//     deterministic given an explicit seed (package math/rand, following
//     the teacher's builder.WithSeed convention: no package-level RNG).
//  3. Inconsistency — cost(e) = I(B) - I(B\{e}), fetched from an
//     oracle.InconsistencyOracle (lazily, per spec.md §4.6.3).
package cost
