package viterbi

import (
	"fmt"

	"github.com/morisaki/kotoba/dictionary"
	"github.com/morisaki/kotoba/lattice"
)

// Solve inserts the Eos sentinel into lat, relaxes every node reachable
// from Bos, and returns the reconstructed minimum-cost Bos->Eos path
// (Bos and Eos included; callers may strip them).
//
// Stage 1 (init): insert Eos at lat.Length().
// Stage 2 (process): walk positions 0..length, relaxing each node
// starting at i against every node ending at i.
// Stage 3 (reconstruct): walk Pred back from Eos to Bos and reverse.
func Solve(lat *lattice.Lattice, dict *dictionary.Dictionary) ([]lattice.Node, error) {
	r := &runner{lat: lat, dict: dict}

	length := lat.Length()
	eosIdx := lat.AddNode(lattice.NewEos(length))
	zero := int64(0)
	r.markReached(bosIndex(lat), zero, lattice.NoPred)

	if err := r.process(length); err != nil {
		return nil, err
	}

	return r.reconstruct(eosIdx)
}

// bosIndex returns the index of the lattice's sole Bos node. lattice.New
// guarantees it is always the first node inserted.
func bosIndex(lat *lattice.Lattice) int {
	return lat.NodesStartingAt(0)[0]
}

// runner holds the mutable state for one Solve call.
type runner struct {
	lat  *lattice.Lattice
	dict *dictionary.Dictionary
}

// markReached sets node idx's TotalCost and Pred directly, without
// comparing against any existing value. Used once, to seed Bos.
func (r *runner) markReached(idx int, cost int64, pred int) {
	n := r.lat.NodeAt(idx)
	n.TotalCost = &cost
	n.Pred = pred
	r.lat.SetNodeAt(idx, n)
}

// process relaxes every node starting at each position i, for i from 0 to
// length inclusive (length is the position Eos starts at).
func (r *runner) process(length int) error {
	for i := 0; i <= length; i++ {
		for _, vIdx := range r.lat.NodesStartingAt(i) {
			if err := r.relax(vIdx); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax considers every node u ending where v starts, and updates v's
// TotalCost/Pred if routing through u strictly improves it. Unreachable
// predecessors (TotalCost == nil) are skipped outright — never
// substituted with their own emission cost.
func (r *runner) relax(vIdx int) error {
	v := r.lat.NodeAt(vIdx)

	emissionV, leftV, err := r.emissionAndLeft(v)
	if err != nil {
		return err
	}

	for _, uIdx := range r.lat.NodesEndingAt(v.Start) {
		if uIdx == vIdx {
			continue // a node cannot precede itself
		}
		u := r.lat.NodeAt(uIdx)
		if !u.Reachable() {
			continue
		}

		transition, err := r.transitionCost(u, v, leftV)
		if err != nil {
			return err
		}

		candidate := emissionV + transition + *u.TotalCost
		if v.TotalCost == nil || candidate < *v.TotalCost {
			v.TotalCost = &candidate
			v.Pred = uIdx
		}
	}

	r.lat.SetNodeAt(vIdx, v)

	return nil
}

// emissionAndLeft returns v's emission cost and left_context_id. Sentinel
// nodes (Bos/Eos) carry neither, so both are 0 by definition.
func (r *runner) emissionAndLeft(v lattice.Node) (emission int64, left int, err error) {
	if v.Kind != lattice.Term {
		return 0, 0, nil
	}
	entry, err := r.dict.Term(v.TermID)
	if err != nil {
		return 0, 0, fmt.Errorf("viterbi: %w", err)
	}

	return entry.EmissionCost, entry.LeftContextID, nil
}

// transitionCost returns the connection cost between predecessor u and
// node v. Zero whenever either endpoint is a sentinel.
func (r *runner) transitionCost(u, v lattice.Node, leftV int) (int64, error) {
	if u.Kind != lattice.Term || v.Kind != lattice.Term {
		return 0, nil
	}
	uEntry, err := r.dict.Term(u.TermID)
	if err != nil {
		return 0, fmt.Errorf("viterbi: %w", err)
	}

	cost, err := r.dict.ConnectionCost(leftV, uEntry.RightContextID)
	if err != nil {
		return 0, fmt.Errorf("viterbi: %w", err)
	}

	return cost, nil
}

// reconstruct walks Pred back from eosIdx to Bos and reverses the
// resulting chain into forward order. Fails with ErrNoPath if Eos was
// never reached.
func (r *runner) reconstruct(eosIdx int) ([]lattice.Node, error) {
	eos := r.lat.NodeAt(eosIdx)
	if !eos.Reachable() {
		return nil, ErrNoPath
	}

	var reversed []lattice.Node
	idx := eosIdx
	for idx != lattice.NoPred {
		n := r.lat.NodeAt(idx)
		reversed = append(reversed, n)
		if n.Kind == lattice.Bos {
			break
		}
		idx = n.Pred
	}
	if reversed[len(reversed)-1].Kind != lattice.Bos {
		return nil, ErrNoPath
	}

	path := make([]lattice.Node, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}

	return path, nil
}
