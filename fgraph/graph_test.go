package fgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/fgraph"
	"github.com/katalvlaran/dinfer/varset"
)

func TestAddVariableRejectsDuplicateLabel(t *testing.T) {
	g := fgraph.New()
	_, err := g.AddVariable(varset.NewVariable(0, 2))
	require.NoError(t, err)

	_, err = g.AddVariable(varset.NewVariable(0, 3))
	require.ErrorIs(t, err, fgraph.ErrDuplicateLabel)
}

func TestAddFactorRejectsUnknownVariable(t *testing.T) {
	g := fgraph.New()
	_, err := g.AddVariable(varset.NewVariable(0, 2))
	require.NoError(t, err)

	vs := varset.New(varset.NewVariable(0, 2), varset.NewVariable(1, 2))
	_, err = g.AddFactor(factor.New(vs, 1))
	require.ErrorIs(t, err, fgraph.ErrUnknownVariable)
}

func TestAddFactorWiresDualNeighbors(t *testing.T) {
	g := fgraph.New()
	i0, err := g.AddVariable(varset.NewVariable(0, 2))
	require.NoError(t, err)
	i1, err := g.AddVariable(varset.NewVariable(1, 2))
	require.NoError(t, err)

	vs := varset.New(g.Var(i0), g.Var(i1))
	capI, err := g.AddFactor(factor.New(vs, 1))
	require.NoError(t, err)

	nb0 := g.NbV(i0)
	require.Len(t, nb0, 1)
	require.Equal(t, capI, nb0[0].Index)

	nbF := g.NbF(capI)
	require.Len(t, nbF, 2)
	require.Equal(t, i0, nbF[0].Index)
	require.Equal(t, i1, nbF[1].Index)

	// duality: the variable-side record's Dual is its ordinal on the
	// factor side, and vice versa.
	require.Equal(t, nb0[0].Dual, nbF[0].Iter)
	require.Equal(t, nbF[0].Dual, nb0[0].Iter)

	require.Equal(t, 2, g.NrEdges())
}

func TestFindVarResolvesLabel(t *testing.T) {
	g := fgraph.New()
	_, err := g.AddVariable(varset.NewVariable(7, 2))
	require.NoError(t, err)

	i, ok := g.FindVar(7)
	require.True(t, ok)
	require.Equal(t, 0, i)

	_, ok = g.FindVar(8)
	require.False(t, ok)
}

func TestEdgeIDsAreDistinctPerEdge(t *testing.T) {
	g, err := fgraph.Chain(3, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)

	id0 := g.EdgeID(1, 0)
	id1 := g.EdgeID(1, 1)
	require.NotEqual(t, id0, id1)
}

func TestChainIsTree(t *testing.T) {
	g, err := fgraph.Chain(5, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)
	require.True(t, g.IsTree())
	require.Equal(t, 5, g.NrVars())
	require.Equal(t, 4, g.NrFactors())
}

func TestStarIsTree(t *testing.T) {
	g, err := fgraph.Star(6, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)
	require.True(t, g.IsTree())
}

func TestCycleIsNotTree(t *testing.T) {
	g, err := fgraph.Cycle(4, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)
	require.False(t, g.IsTree())
	require.Equal(t, 4, g.NrVars())
	require.Equal(t, 4, g.NrFactors())
}

func TestGridConnectivity(t *testing.T) {
	g, err := fgraph.Grid(2, 3, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)
	require.Equal(t, 6, g.NrVars())
	// 2x3 grid has 3*(2-1) vertical + 2*(3-1) horizontal = 3+4 = 7 edges
	require.Equal(t, 7, g.NrFactors())
	require.False(t, g.IsTree())
}

func TestXORTriangleParityFactor(t *testing.T) {
	g, err := fgraph.XORTriangle()
	require.NoError(t, err)
	require.Equal(t, 3, g.NrVars())
	require.Equal(t, 1, g.NrFactors())

	f := g.FactorAt(0)
	vs := f.Vars()
	for state := 0; state < vs.NrStates(); state++ {
		bits := vs.Decode(state)
		parity := (bits[0] + bits[1] + bits[2]) % 2
		if parity == 0 {
			require.Equal(t, 1.0, f.P()[state])
		} else {
			require.Equal(t, 0.0, f.P()[state])
		}
	}
}

func TestRandomFactorFnProducesValidFactor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := fgraph.Chain(3, 2, fgraph.RandomFactorFn(), rng)
	require.NoError(t, err)
	require.Equal(t, 2, g.NrFactors())
}
