package bp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dinfer/bp"
	"github.com/katalvlaran/dinfer/fgraph"
)

func TestWithTolPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { bp.WithTol(0) })
	require.Panics(t, func() { bp.WithTol(-1) })
}

func TestWithMaxIterPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { bp.WithMaxIter(0) })
	require.Panics(t, func() { bp.WithMaxIter(-5) })
}

func TestDefaultUpdatesIsParall(t *testing.T) {
	g, err := fgraph.Chain(2, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)

	solver, err := bp.New(g)
	require.NoError(t, err)
	require.Contains(t, solver.Identify(), bp.PARALL.String())
}

func TestUpdateTypeStringRendersAllVariants(t *testing.T) {
	require.Equal(t, "PARALL", bp.PARALL.String())
	require.Equal(t, "SEQFIX", bp.SEQFIX.String())
	require.Equal(t, "SEQRND", bp.SEQRND.String())
	require.Equal(t, "SEQMAX", bp.SEQMAX.String())
	require.Equal(t, "UNKNOWN", bp.UpdateType(99).String())
}

func TestNilOptionIsIgnored(t *testing.T) {
	g, err := fgraph.Chain(2, 2, fgraph.UniformFactorFn(), nil)
	require.NoError(t, err)

	var nilOpt bp.Option
	_, err = bp.New(g, nilOpt)
	require.NoError(t, err)
}
