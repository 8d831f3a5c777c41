// Package connmatrix provides a dense, square integer grid used to look up
// bigram connection (transition) costs between a left and a right context
// id.
//
// The matrix is sparse on disk (matrix.def lists only the non-zero
// triples) but dense in memory: every cell is allocated up front and
// zero-initialized, so the inner-loop lookup Cost(left, right) performed
// once per lattice edge during Viterbi relaxation is a single O(1),
// cache-friendly slice index.
//
// Complexity:
//   - New:  O(N^2) time and memory.
//   - Cost: O(1).
//   - Set:  O(1).
package connmatrix
