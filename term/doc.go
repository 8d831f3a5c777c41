// Package term defines the dictionary term entry and the append-only
// table that stores them.
//
// What:
//
//   - Entry: one dictionary row (surface form, left/right context ids,
//     emission cost, part-of-speech features).
//   - Table: an append-only, index-stable collection of Entry values.
//     A Table is built once by the dictionary loader and never mutated
//     afterward; every ID it hands out remains valid for the life of
//     the Table.
//
// Why:
//
//   - The lattice and Viterbi solver only ever need O(1) lookup by ID
//     and never need to mutate a term after it is loaded, so a plain
//     append-only slice behind a bounds-checked accessor is both the
//     simplest and the fastest representation.
//
// Determinism:
//
//	IDs are assigned in insertion order; loading the same dictionary
//	files in the same order always yields the same IDs.
//
// Complexity:
//
//   - Append: O(1) amortized.
//   - Get:    O(1), bounds-checked.
package term
