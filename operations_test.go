// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"math/rand"
	"testing"
)

// evalAt brute-force evaluates ptr under a full assignment, used by the
// tests below in place of the teacher's Allsat-based set bookkeeping: with
// only a handful of declared variables, exhaustive assignment checking is
// simpler and exercises the same "does the DAG compute the right Boolean
// function" property.
func evalAt(m *Manager, ptr BddPtr, assignment []bool) bool {
	for !ptr.IsConst() {
		v := m.varOf(ptr)
		if assignment[v] {
			ptr = m.high(ptr)
		} else {
			ptr = m.low(ptr)
		}
	}
	return ptr.IsTrue()
}

// countSat brute-forces the number of satisfying assignments over the first
// varnum variables, used to cross-check SatCount.
func countSat(m *Manager, ptr BddPtr, varnum int) int64 {
	var count int64
	assignment := make([]bool, varnum)
	var rec func(i int)
	rec = func(i int) {
		if i == varnum {
			if evalAt(m, ptr, assignment) {
				count++
			}
			return
		}
		assignment[i] = false
		rec(i + 1)
		assignment[i] = true
		rec(i + 1)
	}
	rec(0)
	return count
}

func TestIteIdentity(t *testing.T) {
	m, err := NewLinear(4)
	if err != nil {
		t.Fatal(err)
	}
	n1 := m.AndAll(m.Var(0, true), m.Var(2, true), m.Var(3, true))
	n2 := m.AndAll(m.Var(0, true), m.Var(3, true))
	actual := m.Ite(n1, n2, m.Negate(n2))
	expected := m.Or(m.And(n1, n2), m.And(m.Negate(n1), m.Negate(n2)))
	if !m.Eq(actual, expected) {
		t.Errorf("ite(f,g,h) <=> (f and g) or (not f and h): expected equal BDDs")
	}
}

// TestOperations implements the same spirit of check as the Buddy
// distribution's bddtest program: random sets of variables are combined with
// And/Or/Negate and then checked, exhaustively over all assignments, to
// compute the expected Boolean function and satisfying-assignment count.
func TestOperations(t *testing.T) {
	const varnum = 4
	m, err := NewLinear(varnum)
	if err != nil {
		t.Fatal(err)
	}

	a, b, c, d := m.Var(0, true), m.Var(1, true), m.Var(2, true), m.Var(3, true)
	na, nb, nc, nd := m.Negate(a), m.Negate(b), m.Negate(c), m.Negate(d)

	check := func(ptr BddPtr) {
		count := m.SatCount(ptr)
		brute := countSat(m, ptr, varnum)
		if count.Cmp(big.NewInt(brute)) != 0 {
			t.Errorf("SatCount mismatch: bdd says %s, brute force says %d", count, brute)
		}
	}

	check(m.True())
	check(m.False())
	check(m.Or(m.And(a, b), m.And(na, nb)))
	check(m.Or(m.And(a, b), m.And(c, d)))
	check(m.OrAll(m.AndAll(a, nb), m.AndAll(a, nd), m.AndAll(a, b, nc)))

	for i := 0; i < varnum; i++ {
		check(m.Var(VarLabel(i), true))
		check(m.Var(VarLabel(i), false))
	}

	set := m.True()
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		s := rand.Intn(2)
		if s == 0 {
			set = m.And(set, m.Var(VarLabel(v), true))
		} else {
			set = m.And(set, m.Var(VarLabel(v), false))
		}
		check(set)
	}
}
