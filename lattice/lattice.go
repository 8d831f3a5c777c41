package lattice

import "github.com/morisaki/kotoba/term"

// Kind discriminates a Node's role in the lattice.
type Kind int

const (
	// Term is an ordinary dictionary-term occurrence.
	Term Kind = iota
	// Bos is the single sentinel source node at position 0.
	Bos
	// Eos is the single sentinel sink node at the lattice's length.
	Eos
)

// NoPred is the sentinel Pred value meaning "no predecessor assigned
// yet". It is distinct from any valid slice index (which are all >= 0).
const NoPred = -1

// Node is one candidate occurrence in the lattice: a dictionary term
// spanning [Start, End) in codepoints, or a Bos/Eos sentinel.
//
// TotalCost and Pred are mutable fields the Viterbi solver fills in;
// they carry no meaning until the solver has visited the node. A nil
// TotalCost means "not yet reachable from Bos".
type Node struct {
	Kind   Kind
	Start  int // codepoint offset, inclusive
	End    int // codepoint offset, exclusive
	TermID term.ID

	TotalCost *int64
	Pred      int // index into the owning Lattice's node slice, or NoPred
}

// Reachable reports whether the Viterbi solver has assigned this node a
// finite total cost.
func (n Node) Reachable() bool {
	return n.TotalCost != nil
}

// NewBos returns the sentinel Bos node for position 0.
func NewBos() Node {
	return Node{Kind: Bos, Start: 0, End: 0, Pred: NoPred}
}

// NewEos returns the sentinel Eos node for a lattice of the given length.
func NewEos(length int) Node {
	return Node{Kind: Eos, Start: length, End: length + 1, Pred: NoPred}
}

// NewTerm returns a Term node spanning [start, start+runeLen) referencing
// id. Pred starts unset (NoPred) and TotalCost starts nil (unreached).
func NewTerm(start, runeLen int, id term.ID) Node {
	return Node{Kind: Term, Start: start, End: start + runeLen, TermID: id, Pred: NoPred}
}

// Lattice owns every Node produced by one tokenization pass, bucketed by
// start and end position for O(1) amortized enumeration.
type Lattice struct {
	nodes      []Node
	startIndex map[int][]int // start position -> indices into nodes
	endIndex   map[int][]int // end position -> indices into nodes
	length     int
}

// New returns an empty Lattice for an input of the given codepoint length,
// with a single Bos node pre-inserted at position 0. length is fixed for
// the life of the Lattice: it anchors where Eos belongs regardless of
// which positions a scan actually finds dictionary matches at, so a gap
// of unmatched codepoints before the input's true end still leaves Eos
// unreachable rather than silently relocated to the last matched node.
func New(length int) *Lattice {
	l := &Lattice{
		startIndex: make(map[int][]int),
		endIndex:   make(map[int][]int),
		length:     length,
	}
	l.AddNode(NewBos())

	return l
}

// AddNode appends n to the lattice and indexes n by its start and end
// positions. Does not deduplicate: two nodes with an identical span and
// term are legal (their costs tie) but wasteful (deduplicating is a valid
// optimization, never required for correctness).
//
// Returns the index assigned to n, for callers that need to refer back to
// it (the Viterbi solver's Pred field).
func (l *Lattice) AddNode(n Node) int {
	idx := len(l.nodes)
	l.nodes = append(l.nodes, n)
	l.startIndex[n.Start] = append(l.startIndex[n.Start], idx)
	l.endIndex[n.End] = append(l.endIndex[n.End], idx)

	return idx
}

// Length returns the codepoint length the Lattice was constructed with
// (New's argument), not a value inferred from the nodes added since.
func (l *Lattice) Length() int {
	return l.length
}

// NodeAt returns the node stored at idx (an index previously returned by
// AddNode, or referenced by another node's Pred field).
func (l *Lattice) NodeAt(idx int) Node {
	return l.nodes[idx]
}

// SetNodeAt overwrites the node stored at idx. Used exclusively by the
// Viterbi solver to record TotalCost/Pred once a node is relaxed.
func (l *Lattice) SetNodeAt(idx int, n Node) {
	l.nodes[idx] = n
}

// NodesStartingAt returns the indices of every node whose Start == i, in
// insertion order.
func (l *Lattice) NodesStartingAt(i int) []int {
	return l.startIndex[i]
}

// NodesEndingAt returns the indices of every node whose End == i, in
// insertion order.
func (l *Lattice) NodesEndingAt(i int) []int {
	return l.endIndex[i]
}

