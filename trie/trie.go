package trie

import "github.com/morisaki/kotoba/term"

// Match is one (surface form, term id) pair yielded by CommonPrefixSearch.
type Match struct {
	Surface string
	ID      term.ID
}

// node is one level of the trie, keyed by the rune that led into it.
//
// ids holds every term.ID whose surface form ends exactly at this node;
// it is nil for nodes that are pure branch points (no entry terminates
// there), and may hold more than one ID when the dictionary contains
// duplicate surface forms.
type node struct {
	children map[rune]*node
	surface  string // the full surface form terminating here, cached for Match construction
	ids      []term.ID
}

// Index is a rune-keyed trie mapping surface form -> one or more term.ID.
//
// Stage 1 (Insert): walk/create nodes for each rune of the surface form.
// Stage 2 (CommonPrefixSearch): walk the same path for an input suffix,
// collecting every terminal node visited along the way.
type Index struct {
	root *node
}

// New returns an empty Index.
func New() *Index {
	return &Index{root: &node{children: make(map[rune]*node)}}
}

// Insert registers surface -> id. If surface was already inserted (by
// this or a previous call), id is appended alongside any existing ids
// for that surface form rather than replacing them: surface form is a
// non-unique key.
//
// Complexity: O(k) where k is the codepoint length of surface.
func (idx *Index) Insert(surface string, id term.ID) {
	cur := idx.root
	for _, r := range surface {
		child, ok := cur.children[r]
		if !ok {
			child = &node{children: make(map[rune]*node)}
			cur.children[r] = child
		}
		cur = child
	}
	cur.surface = surface
	cur.ids = append(cur.ids, id)
}

// CommonPrefixSearch returns every (surface form, term.ID) pair stored in
// the index whose key is a prefix of suffix. Completeness and soundness
// follow directly from the walk: a terminal node is only ever visited by
// consuming exactly the runes of its surface form, in order, from the
// start of suffix.
//
// Complexity: O(k + m) where k = codepoint length of suffix walked and m
// = number of matches returned.
func (idx *Index) CommonPrefixSearch(suffix string) []Match {
	var matches []Match
	cur := idx.root
	for _, r := range suffix {
		child, ok := cur.children[r]
		if !ok {
			break
		}
		cur = child
		if len(cur.ids) > 0 {
			for _, id := range cur.ids {
				matches = append(matches, Match{Surface: cur.surface, ID: id})
			}
		}
	}

	return matches
}
