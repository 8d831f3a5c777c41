package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morisaki/kotoba/lattice"
	"github.com/morisaki/kotoba/term"
)

func TestNewPreInsertsBos(t *testing.T) {
	lat := lattice.New(0)
	require.Equal(t, 0, lat.Length())

	starting := lat.NodesStartingAt(0)
	require.Len(t, starting, 1)
	bos := lat.NodeAt(starting[0])
	require.Equal(t, lattice.Bos, bos.Kind)
	require.Equal(t, 0, bos.Start)
	require.Equal(t, 0, bos.End)
}

func TestAddNodeIndexesByStartAndEnd(t *testing.T) {
	lat := lattice.New(2)
	idx := lat.AddNode(lattice.NewTerm(0, 2, term.ID(5)))
	require.Equal(t, 2, lat.Length(), "Length reflects New's argument, not the node just added")

	starting := lat.NodesStartingAt(0)
	require.Contains(t, starting, idx)

	ending := lat.NodesEndingAt(2)
	require.Contains(t, ending, idx)

	node := lat.NodeAt(idx)
	require.Equal(t, term.ID(5), node.TermID)
	require.False(t, node.Reachable())
}

func TestLengthIsFixedAtConstructionRegardlessOfNodesAdded(t *testing.T) {
	lat := lattice.New(5)
	lat.AddNode(lattice.NewTerm(0, 1, term.ID(0))) // ends at 1, well short of 5
	require.Equal(t, 5, lat.Length(), "a gap after the last matched node must not shrink Length")
}

func TestAddNodeDoesNotDeduplicate(t *testing.T) {
	lat := lattice.New(1)
	first := lat.AddNode(lattice.NewTerm(0, 1, term.ID(1)))
	second := lat.AddNode(lattice.NewTerm(0, 1, term.ID(1)))
	require.NotEqual(t, first, second)
	require.Len(t, lat.NodesStartingAt(0), 3) // Bos + two identical term nodes
}

func TestSetNodeAtMarksReachable(t *testing.T) {
	lat := lattice.New(1)
	idx := lat.AddNode(lattice.NewTerm(0, 1, term.ID(0)))
	node := lat.NodeAt(idx)
	cost := int64(7)
	node.TotalCost = &cost
	node.Pred = 0
	lat.SetNodeAt(idx, node)

	updated := lat.NodeAt(idx)
	require.True(t, updated.Reachable())
	require.Equal(t, int64(7), *updated.TotalCost)
}
