package factor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
	"github.com/stretchr/testify/require"
)

func v(label, states int) varset.Variable { return varset.NewVariable(label, states) }

func TestMulIdenticalVarSetsFastPath(t *testing.T) {
	vs := varset.New(v(0, 2))
	a := factor.FromProb(vs, prob.Prob{1, 2})
	b := factor.FromProb(vs, prob.Prob{3, 4})

	out, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{3, 8}, out.P())
	require.True(t, out.Vars().Equal(vs))
}

func TestMulDifferentVarSetsUnion(t *testing.T) {
	v0 := varset.New(v(0, 2))
	v1 := varset.New(v(1, 2))
	a := factor.FromProb(v0, prob.Prob{1, 2})  // depends on x0
	b := factor.FromProb(v1, prob.Prob{10, 20}) // depends on x1

	out, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 4, out.NrStates())
	// union is {x0,x1}, x0 fastest: states (0,0)(1,0)(0,1)(1,1)
	require.Equal(t, prob.Prob{10, 20, 20, 40}, out.P())
}

func TestDivZeroPolicy(t *testing.T) {
	vs := varset.New(v(0, 2))
	a := factor.FromProb(vs, prob.Prob{0, 4})
	b := factor.FromProb(vs, prob.Prob{0, 2})

	out, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{0, 2}, out.P())
}

func TestAddSubRequireIdenticalVarSets(t *testing.T) {
	v0 := varset.New(v(0, 2))
	v1 := varset.New(v(1, 2))
	a := factor.New(v0, 1)
	b := factor.New(v1, 1)

	_, err := a.Add(b)
	require.ErrorIs(t, err, factor.ErrVarSetMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, factor.ErrVarSetMismatch)
}

func TestMarginalSumsOutVariable(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 2)
	vs := varset.New(x0, x1)
	// joint order: x0 fastest -> (0,0)=1 (1,0)=2 (0,1)=3 (1,1)=4
	f := factor.FromProb(vs, prob.Prob{1, 2, 3, 4})

	marg, err := f.Marginal(varset.New(x0), false)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{4, 6}, marg.P()) // x0=0: 1+3, x0=1: 2+4
}

func TestSliceFixesVariable(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 2)
	vs := varset.New(x0, x1)
	f := factor.FromProb(vs, prob.Prob{1, 2, 3, 4})

	sliced, err := f.Slice(varset.New(x1), 1) // x1 == 1
	require.NoError(t, err)
	require.Equal(t, prob.Prob{3, 4}, sliced.P())
}

func TestEmbedLiftsToSuperset(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 3)
	f := factor.FromProb(varset.New(x0), prob.Prob{1, 2})

	embedded, err := f.Embed(varset.New(x0, x1))
	require.NoError(t, err)
	require.Equal(t, 6, embedded.NrStates())
	require.Equal(t, prob.Prob{1, 2, 1, 2, 1, 2}, embedded.P())
}

func TestEmbedRejectsNonSubset(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 2)
	f := factor.FromProb(varset.New(x1), prob.Prob{1, 2})

	_, err := f.Embed(varset.New(x0))
	require.ErrorIs(t, err, factor.ErrNotSubset)
}

func TestNormalizeAndNormalized(t *testing.T) {
	f := factor.FromProb(varset.New(v(0, 2)), prob.Prob{1, 3})
	normed, err := f.Normalized(prob.NormProb)
	require.NoError(t, err)
	require.InDelta(t, 0.25, normed.P()[0], 1e-12)
	require.InDelta(t, 0.75, normed.P()[1], 1e-12)
	require.Equal(t, prob.Prob{1, 3}, f.P()) // original untouched
}

func TestMaxMinPointwise(t *testing.T) {
	vs := varset.New(v(0, 2))
	a := factor.FromProb(vs, prob.Prob{1, 5})
	b := factor.FromProb(vs, prob.Prob{3, 2})

	mx, err := a.Max(b)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{3, 5}, mx.P())

	mn, err := a.Min(b)
	require.NoError(t, err)
	require.Equal(t, prob.Prob{1, 2}, mn.P())
}

func TestStrengthOfDeterministicEqualityFactor(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 2)
	vs := varset.New(x0, x1)
	// near-deterministic equality coupling (equal states weighted 100x): high strength
	f := factor.FromProb(vs, prob.Prob{10, 0.1, 0.1, 10})

	s, err := f.Strength(x0, x1)
	require.NoError(t, err)
	require.Greater(t, s, 0.5)
	require.LessOrEqual(t, s, 1.0)
}

func TestStrengthRejectsUnknownVariable(t *testing.T) {
	f := factor.New(varset.New(v(0, 2)), 1)
	_, err := f.Strength(v(0, 2), v(1, 2))
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
}

// Strength on a factor whose VarSet strictly contains {i,j} must divide
// the two num/den slice-factors pointwise over the remaining variable
// before taking the max (factor.h's slice(...).p().divide(...).maxVal()),
// not take the max of each slice first and then divide. The two differ
// whenever the remaining variable's states carry non-uniform ratios: at
// x2=0 the base pairwise ratio is 10000 (num=10*10, den=0.1*0.1); at
// x2=1 the (0,1) branch is doubled to 0.2, dropping that state's ratio
// to 5000. Divide-then-max sees [10000,5000] and picks 10000;
// ratio-of-maxima collapses each slice to its max first (10,10 / 0.2,0.1)
// and picks 5000.
func TestStrengthDividesBeforeTakingMax(t *testing.T) {
	x0, x1, x2 := v(0, 2), v(1, 2), v(2, 2)
	vs3 := varset.New(x0, x1, x2)
	// indexed by CalcState(x0,x1,x2) with x0 fastest-varying.
	widened := factor.FromProb(vs3, prob.Prob{
		10, 0.1, 0.1, 10, // x2=0: base pairwise [(0,0),(1,0),(0,1),(1,1)]
		10, 0.1, 0.2, 10, // x2=1: (0,1) branch doubled to 0.2
	})

	got, err := widened.Strength(x0, x1)
	require.NoError(t, err)

	want := math.Tanh(math.Log(10000) / 4)
	require.InDelta(t, want, got, 1e-9)

	wrong := math.Tanh(math.Log(5000) / 4)
	require.Greater(t, math.Abs(got-wrong), 1e-6)
}

func TestMutualInfoOfIndependentFactorIsZero(t *testing.T) {
	x0 := v(0, 2)
	x1 := v(1, 2)
	vs := varset.New(x0, x1)
	f := factor.FromProb(vs, prob.Prob{1, 1, 1, 1}) // uniform, independent

	mi, err := f.MutualInfo()
	require.NoError(t, err)
	require.InDelta(t, 0.0, mi, 1e-9)
}

func TestStringRendersVarsAndValues(t *testing.T) {
	f := factor.FromProb(varset.New(v(0, 2)), prob.Prob{1, 2})
	require.Contains(t, f.String(), "x0(2)")
}

func TestMulThenDivRoundTrips(t *testing.T) {
	vs := varset.New(v(0, 2), v(1, 2))
	f := factor.FromProb(vs, prob.Prob{2, 3, 5, 7})
	g := factor.FromProb(varset.New(v(1, 2)), prob.Prob{4, 9})

	product, err := f.Mul(g)
	require.NoError(t, err)

	back, err := product.Div(g)
	require.NoError(t, err)
	require.True(t, back.Vars().Equal(f.Vars()))
	for k, x := range f.P() {
		require.InDelta(t, x, back.P()[k], 1e-9)
	}
}

func TestDistRequiresMatchingVarSets(t *testing.T) {
	a := factor.FromProb(varset.New(v(0, 2)), prob.Prob{1, 2})
	b := factor.FromProb(varset.New(v(1, 2)), prob.Prob{1, 2})

	_, err := factor.Dist(a, b, prob.DistL1)
	require.ErrorIs(t, err, factor.ErrVarSetMismatch)
}
