// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"
)

// milner is an example of using BDD for state space computation. It is
// directly adapted from the examples in the Buddy distribution. It computes
// the reachable state of a system composed of N cyclers, with an initial BDD
// size of varnum*6 variables. For this system, we have an analytical formula
// to compute the size of the state space.
func milner(tb testing.TB, fast bool, varnum int, options ...Option) (*Manager, BddPtr) {
	m, err := NewLinear(varnum*6, options...)
	if err != nil {
		tb.Error(err)
	}
	c := make([]BddPtr, varnum)
	cp := make([]BddPtr, varnum)
	t := make([]BddPtr, varnum)
	tp := make([]BddPtr, varnum)
	h := make([]BddPtr, varnum)
	hp := make([]BddPtr, varnum)

	for n := 0; n < varnum; n++ {
		c[n] = m.Var(VarLabel(n*6), true)
		cp[n] = m.Var(VarLabel(n*6+1), true)
		t[n] = m.Var(VarLabel(n*6+2), true)
		tp[n] = m.Var(VarLabel(n*6+3), true)
		h[n] = m.Var(VarLabel(n*6+4), true)
		hp[n] = m.Var(VarLabel(n*6+5), true)
	}

	nvar := make([]VarLabel, varnum*3)
	pvar := make([]VarLabel, varnum*3)
	for n := 0; n < varnum*3; n++ {
		nvar[n] = VarLabel(n * 2)   // normal variables
		pvar[n] = VarLabel(n*2 + 1) // primed variables
	}
	perm := NewPermutation(pvar, nvar)

	// We create a BDD for the initial state of Milner's cyclers.
	I := m.AndAll(c[0], m.Negate(h[0]), m.Negate(t[0]))
	for i := 1; i < varnum; i++ {
		I = m.AndAll(I, c[i], m.Negate(h[i]), m.Negate(t[i]))
	}

	// A builds a BDD expressing that all other variables than 'z' is
	// unchanged.
	A := func(x, y []BddPtr, z int) BddPtr {
		res := m.True()
		for i := 0; i < varnum; i++ {
			if i != z {
				res = m.And(res, m.Iff(x[i], y[i]))
			}
		}
		return res
	}

	// Now we compute the transition relation.
	T := m.False() // The monolithic transition relation
	for i := 0; i < varnum; i++ {
		P1 := m.AndAll(c[i], m.Negate(cp[i]), tp[i], m.Negate(t[i]), hp[i], A(c, cp, i), A(t, tp, i), A(h, hp, i))
		P2 := m.AndAll(h[i], m.Negate(hp[i]), cp[(i+1)%varnum], A(c, cp, (i+1)%varnum), A(h, hp, i), A(t, tp, varnum))
		E := m.AndAll(t[i], m.Negate(tp[i]), A(t, tp, i), A(h, hp, varnum), A(c, cp, varnum))
		T = m.OrAll(T, P1, P2, E)
	}

	// We compute the reachable states.
	R := I // Reachable state space
	for {
		prev := R
		if fast {
			R = m.Or(m.Replace(m.AndExist(nvar, R, T), perm), R)
		} else {
			R = m.Or(m.Replace(m.ExistsAll(m.And(R, T), nvar), perm), R)
		}
		if prev == R {
			break
		}
	}
	tb.Log("\n", m.Stats())
	return m, R
}

func TestMilnerSlow(t *testing.T) {
	for _, N := range []int{4, 5, 7, 11} {
		// we choose a small arena to stress the table-growth path
		fast, Rfast := milner(t, true, N, Nodesize(100), Cachesize(25))
		slow, Rslow := milner(t, false, N, Nodesize(100), Cachesize(25))
		expected := big.NewInt(int64(N))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*N+1, 1)
		expected.Mul(expected, pow)
		fastresult := fast.SatCount(Rfast)
		slowresult := slow.SatCount(Rslow)
		if fastresult.Cmp(expected) != 0 || slowresult.Cmp(expected) != 0 {
			t.Errorf("Error in Milner(%d), expected %s, actual %s (fast) and %s (slow)", N, expected, fastresult, slowresult)
		}
	}
}

func Testmilner(t *testing.T) {
	for _, N := range []int{16, 20, 30, 50} {
		m, R := milner(t, true, N, Nodesize(100000))
		expected := big.NewInt(int64(N))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*N+1, 1)
		expected.Mul(expected, pow)
		result := m.SatCount(R)
		if result.Cmp(expected) != 0 {
			t.Errorf("Error in Milner(%d), expected %s, actual %s", N, expected, result)
		}
	}
}

func TestMilner80(t *testing.T) {
	N := 80
	tt := func(fast bool) {
		m, R := milner(t, fast, N, Nodesize(1000000), Cachesize(250000))
		expected := big.NewInt(int64(N))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*N+1, 1)
		expected.Mul(expected, pow)
		result := m.SatCount(R)
		if result.Cmp(expected) != 0 {
			t.Errorf("Error in Milner(%d), expected %s, actual %s", N, expected, result)
		}
	}
	tt(true)
	tt(false)
}

func BenchmarkMilner150(b *testing.B) {
	for n := 0; n < b.N; n++ {
		milner(b, true, 150, Nodesize(1000000), Cachesize(250000))
	}
}

func BenchmarkMilner300(b *testing.B) {
	for n := 0; n < b.N; n++ {
		milner(b, true, 300, Nodesize(1000000), Cachesize(250000), Maxnodeincrease(1<<23))
	}
}
