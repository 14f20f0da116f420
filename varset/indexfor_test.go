package varset_test

import (
	"testing"

	"github.com/katalvlaran/dinfer/varset"
	"github.com/stretchr/testify/require"
)

func TestIndexForNotSubset(t *testing.T) {
	a := varset.New(v(5, 2))
	b := varset.New(v(0, 2), v(1, 3))

	_, err := varset.NewIndexFor(a, b)
	require.ErrorIs(t, err, varset.ErrNotSubset)
}

func TestIndexForFastDimension(t *testing.T) {
	a := varset.New(v(0, 2))
	b := varset.New(v(0, 2), v(1, 3))

	idx, err := varset.NewIndexFor(a, b)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 0, 1, 0, 1}, idx.Materialize())
}

func TestIndexForSlowDimension(t *testing.T) {
	a := varset.New(v(1, 3))
	b := varset.New(v(0, 2), v(1, 3))

	idx, err := varset.NewIndexFor(a, b)
	require.NoError(t, err)

	require.Equal(t, []int{0, 0, 1, 1, 2, 2}, idx.Materialize())
}

func TestIndexForCursorStepsMatchMaterialize(t *testing.T) {
	a := varset.New(v(0, 2))
	b := varset.New(v(0, 2), v(1, 3))

	table := func() []int {
		idx, err := varset.NewIndexFor(a, b)
		require.NoError(t, err)

		return idx.Materialize()
	}()

	idx, err := varset.NewIndexFor(a, b)
	require.NoError(t, err)

	got := []int{idx.Index()}
	for idx.Next() {
		got = append(got, idx.Index())
	}
	require.Equal(t, table, got)
}

func TestIndexForFullSupersetIsIdentity(t *testing.T) {
	b := varset.New(v(0, 2), v(1, 2))

	idx, err := varset.NewIndexFor(b, b)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, idx.Materialize())
}
