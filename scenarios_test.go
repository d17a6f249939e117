// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bdd "github.com/arborbdd/robdd"
	"github.com/arborbdd/robdd/cnf"
)

// S1: 3 vars, build (v0 ∨ v1) ∧ v0, expect it equals var(0, true).
func TestScenarioS1(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	r := m.And(m.Or(m.Var(0, true), m.Var(1, true)), m.Var(0, true))
	require.Equal(t, m.Var(0, true), r)
}

// S2: same as S1, then condition(r, 1, false), still equals var(0, true).
func TestScenarioS2(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	r := m.And(m.Or(m.Var(0, true), m.Var(1, true)), m.Var(0, true))
	r = m.Condition(r, 1, false)
	require.Equal(t, m.Var(0, true), r)
}

// S3: (v0 ∧ v1 ∧ v2), then exists(·, 1), expect it equals v0 ∧ v2.
func TestScenarioS3(t *testing.T) {
	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	r := m.AndAll(m.Var(0, true), m.Var(1, true), m.Var(2, true))
	r = m.Exists(r, 1)
	require.Equal(t, m.And(m.Var(0, true), m.Var(2, true)), r)
}

// S4: DIMACS "p cnf 3 1 / 1 2 3 0", smooth to 3 vars, wmc in GF(p) with all
// weights (1,1): unsmoothed = 3, smoothed = 7.
func TestScenarioS4(t *testing.T) {
	doc, err := cnf.ParseString("p cnf 3 1\n1 2 3 0\n")
	require.NoError(t, err)

	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	formula, _, err := cnf.Compile(m, doc)
	require.NoError(t, err)

	gf := bdd.FiniteFieldSemiring{P: 97}
	params := bdd.NewWmcParams[int64](0, 1)
	for v := bdd.VarLabel(0); v < 3; v++ {
		params.SetWeight(v, 1, 1)
	}

	unsmoothed := bdd.Wmc[int64](m, formula, params, gf)
	require.Equal(t, int64(3), unsmoothed)

	smoothed := m.Smooth(formula, 3)
	smoothedCount := bdd.Wmc[int64](m, smoothed, params, gf)
	require.Equal(t, int64(7), smoothedCount)
}

// S5: 2-var CNF with clauses "-1 2" / "1 -2" (i.e. v1 ↔ v2), weights
// (0.4,0.6) for v1 and (0.3,0.7) for v2; expect WMC = 0.54.
func TestScenarioS5(t *testing.T) {
	doc, err := cnf.ParseString("p cnf 2 2\nc weights 0.4 0.6 0.3 0.7\n-1 2 0\n1 -2 0\n")
	require.NoError(t, err)

	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	formula, params, err := cnf.Compile(m, doc)
	require.NoError(t, err)

	result := bdd.Wmc[float64](m, formula, params, bdd.RealSemiring{})
	require.InDelta(t, 0.54, result, 1e-9)
}

// S6: compose(and(v0,v1), 1, and(v2,v3)) equals and(v0, and(v2, v3)).
func TestScenarioS6(t *testing.T) {
	m, err := bdd.NewLinear(4)
	require.NoError(t, err)
	f := m.And(m.Var(0, true), m.Var(1, true))
	g := m.And(m.Var(2, true), m.Var(3, true))
	result := m.Compose(f, 1, g)
	expected := m.And(m.Var(0, true), g)
	require.Equal(t, expected, result)
}
