// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

// SatCount returns the exact number of satisfying assignments of ptr over
// all of the manager's declared variables, using arbitrary-precision
// arithmetic, grounded on the teacher's operations.go Satcount (itself
// math/big-based). Implemented here as smooth-then-fold over
// BigIntSemiring — exactly the composition spec.md's scenario S4 and §8 law
// 8 describe — rather than a bespoke recursive counter, so it exercises
// the same Smooth/Wmc machinery the rest of the engine relies on.
func (m *Manager) SatCount(ptr BddPtr) *big.Int {
	n := m.order.Len()
	smoothed := m.Smooth(ptr, n)
	params := NewWmcParams[*big.Int](big.NewInt(0), big.NewInt(1))
	for v := VarLabel(0); int(v) < n; v++ {
		params.SetWeight(v, big.NewInt(1), big.NewInt(1))
	}
	return Wmc[*big.Int](m, smoothed, params, BigIntSemiring{})
}
