// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bdd "github.com/arborbdd/robdd"
	"github.com/arborbdd/robdd/cnf"
)

func TestParseAndCompile(t *testing.T) {
	doc, err := cnf.ParseString("p cnf 3 1\n1 2 3 0\n")
	require.NoError(t, err)
	require.Equal(t, 3, doc.NumVars)
	require.Equal(t, 1, doc.NumClauses)
	require.Equal(t, [][]int{{1, 2, 3}}, doc.Clauses)
	require.Empty(t, doc.Weights)

	m, err := bdd.NewLinear(3)
	require.NoError(t, err)
	formula, params, err := cnf.Compile(m, doc)
	require.NoError(t, err)

	// Model count of (x1 | x2 | x3) over all three declared variables: 7 of 8
	// assignments.
	require.Equal(t, int64(7), m.SatCount(formula).Int64())
	lo, hi := params.GetVarWeight(0)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 1.0, hi)
}

func TestParseWeights(t *testing.T) {
	doc, err := cnf.ParseString("p cnf 2 2\nc weights 0.4 0.6 0.3 0.7\n-1 2 0\n1 -2 0\n")
	require.NoError(t, err)
	require.Equal(t, []float64{0.4, 0.6, 0.3, 0.7}, doc.Weights)

	m, err := bdd.NewLinear(2)
	require.NoError(t, err)
	_, params, err := cnf.Compile(m, doc)
	require.NoError(t, err)
	lo0, hi0 := params.GetVarWeight(0)
	require.Equal(t, 0.4, lo0)
	require.Equal(t, 0.6, hi0)
	lo1, hi1 := params.GetVarWeight(1)
	require.Equal(t, 0.3, lo1)
	require.Equal(t, 0.7, hi1)
}

func TestParseMalformedClause(t *testing.T) {
	_, err := cnf.ParseString("p cnf 2 1\n1 2\n")
	require.Error(t, err)
}
