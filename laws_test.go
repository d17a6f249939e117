// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bdd "github.com/arborbdd/robdd"
)

func TestLawCanonicity(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	a := m.Or(m.Var(0, true), m.Var(1, true))
	b := m.Or(m.Var(1, true), m.Var(0, true))
	require.True(t, m.Eq(a, b), "a ≡ b as Boolean functions must imply equal tagged pointers")
}

func TestLawDoubleNegation(t *testing.T) {
	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	a := m.Or(m.Var(0, true), m.Negate(m.Var(1, true)))
	require.Equal(t, a, m.Negate(m.Negate(a)))
}

func TestLawCommutativity(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	a, b := m.Var(0, true), m.Var(1, true)
	require.Equal(t, m.And(a, b), m.And(b, a))
	require.Equal(t, m.Or(a, b), m.Or(b, a))
}

func TestLawIdempotence(t *testing.T) {
	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	a := m.Var(0, true)
	require.Equal(t, a, m.And(a, a))
	require.Equal(t, a, m.Or(a, a))
}

func TestLawDeMorgan(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	a, b := m.Var(0, true), m.Var(1, true)
	require.Equal(t,
		m.Negate(m.And(a, b)),
		m.Or(m.Negate(a), m.Negate(b)))
}

func TestLawIteIdentities(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	a := m.Var(0, true)
	b := m.Var(1, true)
	require.Equal(t, a, m.Ite(a, m.True(), m.False()))
	require.Equal(t, b, m.Ite(a, b, b))
	c := m.Var(2, true)
	require.Equal(t, m.Ite(a, b, c), m.Ite(m.Negate(a), c, b))
}

func TestLawShannon(t *testing.T) {
	m, err := bdd.NewLinear(4)
	require.NoError(t, err)
	a := m.AndAll(m.Var(0, true), m.Or(m.Var(1, true), m.Negate(m.Var(2, true))), m.Var(3, false))
	for v := bdd.VarLabel(0); v < 4; v++ {
		expanded := m.Ite(m.Var(v, true), m.Condition(a, v, true), m.Condition(a, v, false))
		require.Equal(t, a, expanded, "Shannon expansion over v%d should reproduce a", v)
	}
}

func TestLawSmoothingPreservesWmc(t *testing.T) {
	m, err := bdd.NewLinear(5)
	require.NoError(t, err)
	a := m.And(m.Var(0, true), m.Var(2, true)) // support {0,2}

	params := bdd.NewWmcParams(0.0, 1.0)
	for v := bdd.VarLabel(0); v < 5; v++ {
		params.SetWeight(v, 1.0, 1.0)
	}

	raw := bdd.Wmc[float64](m, a, params, bdd.RealSemiring{})
	n := 5
	supportSize := len(m.Support(a))
	smoothed := m.Smooth(a, n)
	smoothedWmc := bdd.Wmc[float64](m, smoothed, params, bdd.RealSemiring{})

	want := raw * math.Pow(2, float64(n-supportSize))
	require.InDelta(t, want, smoothedWmc, 1e-9)
}

func TestLawSamplingIsADistribution(t *testing.T) {
	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	// v0 & !v1 has exactly one satisfying assignment, so every draw must hit
	// it and report probability 1.
	a := m.And(m.Var(0, true), m.Negate(m.Var(1, true)))
	params := bdd.NewWmcParams(0.0, 1.0)
	params.SetWeight(0, 1.0, 1.0)
	params.SetWeight(1, 1.0, 1.0)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		sample, prob := m.WeightedSample(a, params, rng)
		require.Equal(t, a, sample)
		require.InDelta(t, 1.0, prob, 1e-9)
	}
}

func TestLawTopKCorrectness(t *testing.T) {
	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	// v0 | v1 has two BDD paths to True: v0=1 (v1 a don't-care), and
	// v0=0 ∧ v1=1.
	a := m.Or(m.Var(0, true), m.Var(1, true))
	params := bdd.NewWmcParams(0.0, 1.0)
	params.SetWeight(0, 1.0, 1.0)
	params.SetWeight(1, 1.0, 1.0)
	union, paths := m.TopKPaths(a, 10, params)
	require.Equal(t, a, union, "the union of every returned path must accept exactly a's language")
	require.Len(t, paths, 2)
}
