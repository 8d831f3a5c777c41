// Package viterbi implements the shortest-path relaxation that turns a
// built lattice.Lattice into the minimum-cost Bos->Eos path.
//
// Solve computes, for every node reachable from Bos, the minimum total
// cost of reaching it and the predecessor that achieves that minimum,
// then reconstructs the Bos->Eos path by walking predecessors backward.
//
// Cost model:
//
//   - emission(v)           = dictionary.Term(v.TermID).EmissionCost, or 0
//     for Bos/Eos.
//   - transition(u, v)      = dictionary.ConnectionCost(left(v), right(u)),
//     or 0 whenever either u or v is a sentinel.
//   - total(v)              = emission(v) + transition(u, v) + total(u),
//     minimized over every eligible predecessor u.
//
// Reachability:
//
//	A node is reachable iff at least one of its predecessors (nodes ending
//	where it starts) is itself reachable. Bos is reachable by definition.
//	A predecessor with no assigned total cost is skipped outright, never
//	substituted with its own emission cost, even though the resulting
//	candidate would type-check; doing so would let a node with no valid
//	path from Bos be treated as though it had one.
//
// Tie-breaking:
//
//	When two predecessors yield an equal candidate cost, the first one
//	encountered during enumeration wins. Only the total cost is guaranteed
//	minimal; callers must not depend on which internal nodes a tied path
//	passes through.
//
// Ordering requirement:
//
//	Positions are processed in increasing index so every predecessor's
//	total cost is finalized before it is read, exactly as the lattice's
//	positions are populated left to right by the tokenizer driver.
//
// Complexity:
//
//   - Time:  O(sum over positions i of |NodesStartingAt(i)| * |NodesEndingAt(i)|).
//   - Space: O(number of lattice nodes), for the TotalCost/Pred fields the
//     solver writes back onto each node.
package viterbi
