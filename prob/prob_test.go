package prob_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dinfer/prob"
	"github.com/stretchr/testify/require"
)

func TestAddSubMismatch(t *testing.T) {
	p := prob.Prob{1, 2, 3}
	q := prob.Prob{1, 2}

	_, err := p.Add(q)
	require.ErrorIs(t, err, prob.ErrLengthMismatch)

	_, err = p.Sub(q)
	require.ErrorIs(t, err, prob.ErrLengthMismatch)
}

func TestElementwise(t *testing.T) {
	p := prob.Prob{2, 4, 6}
	q := prob.Prob{1, 2, 3}

	sum, err := p.Add(q)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{3, 6, 9}, sum)

	quot, err := p.Div(q)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{2, 2, 2}, quot)
}

func TestDivZeroPolicy(t *testing.T) {
	p := prob.Prob{1, 2}
	q := prob.Prob{0, 2}

	zero, err := p.DivPolicy(q, true)
	require.NoError(t, err)
	require.Equal(t, 0.0, zero[0])

	inf, err := p.DivPolicy(q, false)
	require.NoError(t, err)
	require.True(t, math.IsInf(inf[0], 1))
}

func TestNormalizeProb(t *testing.T) {
	p := prob.Prob{2, 1, 1}
	sum, err := p.Normalize(prob.NormProb)
	require.NoError(t, err)
	require.Equal(t, 4.0, sum)
	require.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, p, 1e-12)
}

func TestNormalizeProbFailsOnEmptySum(t *testing.T) {
	p := prob.Prob{0, 0, 0}
	_, err := p.Normalize(prob.NormProb)
	require.ErrorIs(t, err, prob.ErrEmptyNormalization)
}

func TestNormalizeLinf(t *testing.T) {
	p := prob.Prob{-4, 2, 1}
	m, err := p.Normalize(prob.NormLinf)
	require.NoError(t, err)
	require.Equal(t, 4.0, m)
	require.InDeltaSlice(t, []float64{-1, 0.5, 0.25}, p, 1e-12)
}

func TestLogExpRoundTrip(t *testing.T) {
	p := prob.Prob{0, 1, 2.5}
	got := p.Exp().Log(true)
	require.InDelta(t, 0.0, got[0], 1e-12)
	require.InDelta(t, 1.0, got[1], 1e-12)
	require.InDelta(t, 2.5, got[2], 1e-9)
}

func TestEntropyConvention(t *testing.T) {
	p := prob.Prob{1, 0}
	require.Equal(t, 0.0, p.Entropy())

	uniform := prob.Prob{0.5, 0.5}
	require.InDelta(t, math.Log(2), uniform.Entropy(), 1e-12)
}

func TestDistances(t *testing.T) {
	p := prob.Prob{1, 0}
	q := prob.Prob{0.5, 0.5}

	l1, err := prob.Dist(p, q, prob.DistL1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, l1, 1e-12)

	linf, err := prob.Dist(p, q, prob.DistLinf)
	require.NoError(t, err)
	require.InDelta(t, 0.5, linf, 1e-12)

	tv, err := prob.Dist(p, q, prob.DistTV)
	require.NoError(t, err)
	require.InDelta(t, 0.5, tv, 1e-12)
}

func TestMakeZeroMakePositive(t *testing.T) {
	p := prob.Prob{1e-12, 0.5, -1e-12}
	p.MakeZero(1e-9)
	require.Equal(t, prob.Prob{0, 0.5, 0}, p)

	q := prob.Prob{0, 1e-12, 0.5}
	q.MakePositive(1e-6)
	require.Equal(t, prob.Prob{1e-6, 1e-6, 0.5}, q)
}

func TestHasNaNsHasNegatives(t *testing.T) {
	p := prob.Prob{1, math.NaN(), -1}
	require.True(t, p.HasNaNs())
	require.True(t, p.HasNegatives())

	q := prob.Prob{1, 2, 3}
	require.False(t, q.HasNaNs())
	require.False(t, q.HasNegatives())
}
