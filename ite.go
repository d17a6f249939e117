// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Ite computes the ternary if-then-else: (f ∧ g) ∨ (¬f ∧ h), with full
// canonicalization, apply-cache memoization, and Shannon expansion over the
// first essential variable. Grounded on the teacher's operations.go (Ite,
// iteLow/iteHigh/min3 recursion shape) and on original_source/robdd.rs's
// ite_helper for the exact normalization sequence spec.md §4.3 requires
// (the teacher's own Ite predates complement edges and cannot express the
// complement-pull step, so that part is grounded on the Rust source).
func (m *Manager) Ite(f, g, h BddPtr) BddPtr {
	return m.ite(f, g, h)
}

// And is ite(a, b, False).
func (m *Manager) And(a, b BddPtr) BddPtr { return m.ite(a, b, BddFalse) }

// Or is ite(a, True, b).
func (m *Manager) Or(a, b BddPtr) BddPtr { return m.ite(a, BddTrue, b) }

// Iff is ite(a, b, ¬b).
func (m *Manager) Iff(a, b BddPtr) BddPtr { return m.ite(a, b, b.Neg()) }

// Xor is ite(a, ¬b, b).
func (m *Manager) Xor(a, b BddPtr) BddPtr { return m.ite(a, b.Neg(), b) }

// Negate is ¬a: an O(1) tag flip that never touches the DAG.
func (m *Manager) Negate(a BddPtr) BddPtr { return a.Neg() }

// Imp is the material implication a ⇒ b, i.e. ite(a, b, True).
func (m *Manager) Imp(a, b BddPtr) BddPtr { return m.ite(a, b, BddTrue) }

func (m *Manager) ite(f, g, h BddPtr) BddPtr {
	if m.timeBudgetExpired() {
		return BddFalse
	}

	// 1. Terminal shortcuts.
	switch {
	case f.IsTrue():
		return g
	case f.IsFalse():
		return h
	case g == h:
		return g
	case g.IsTrue() && h.IsFalse():
		return f
	case g.IsFalse() && h.IsTrue():
		return f.Neg()
	}

	// 2. Standard symmetries: collapse equivalent triples to one canonical
	// form so that e.g. ite(f,f,h) and ite(f,g,f) normalize away redundant
	// references to f before hitting the cache.
	if g == f {
		g = BddTrue
	} else if g == f.Neg() {
		g = BddFalse
	}
	if h == f {
		h = BddFalse
	} else if h == f.Neg() {
		h = BddTrue
	}
	switch {
	case g == h:
		return g
	case g.IsTrue() && h.IsFalse():
		return f
	case g.IsFalse() && h.IsTrue():
		return f.Neg()
	}

	// Operand-reordering symmetries: ite(f,g,False) == ite(g,f,False) (both
	// are f∧g) and ite(f,True,h) == ite(h,True,f) (both are f∨h). Canonicalize
	// by putting the operand with the smaller bit pattern first, so and(a,b)
	// and and(b,a) (resp. or(a,b)/or(b,a)) hit the same apply-cache entry.
	if h.IsFalse() && !g.IsConst() && g.bits() < f.bits() {
		f, g = g, f
	}
	if g.IsTrue() && !h.IsConst() && h.bits() < f.bits() {
		f, h = h, f
	}

	// 3. Complement-edge pull: ite(¬f', g, h) = ite(f', h, g).
	if f.IsComplemented() {
		f = f.Neg()
		g, h = h, g
	}

	// 4. Re-check for a now-recognized constant triple.
	if g == h {
		return g
	}

	if res, ok := m.cache.lookup(f, g, h); ok {
		return res
	}

	m.numRecursiveCalls++

	v := m.firstEssential(f, g, h)
	fLo, fHi := m.essentialCofactor(f, v)
	gLo, gHi := m.essentialCofactor(g, v)
	hLo, hHi := m.essentialCofactor(h, v)

	lo := m.ite(fLo, gLo, hLo)
	hi := m.ite(fHi, gHi, hHi)

	var res BddPtr
	if lo == hi {
		res = lo
	} else {
		res = m.getOrInsertCanonical(v, lo, hi)
	}

	// Second time-limit check, before caching: a cancelled call's result is
	// discarded rather than memoized, per spec.md §4.7.
	if m.timeBudgetExpired() {
		return BddFalse
	}

	m.cache.store(f, g, h, res)
	return res
}

// topVar returns the variable tested at the root of p and true, or the zero
// value and false if p is a terminal constant.
func (m *Manager) topVar(p BddPtr) (VarLabel, bool) {
	if p.IsConst() {
		return 0, false
	}
	return m.varOf(p), true
}

// firstEssential returns the minimum-order variable appearing as the top of
// f, g, or h.
func (m *Manager) firstEssential(f, g, h BddPtr) VarLabel {
	var v VarLabel
	found := false
	for _, p := range [3]BddPtr{f, g, h} {
		pv, ok := m.topVar(p)
		if !ok {
			continue
		}
		if !found {
			v, found = pv, true
			continue
		}
		v = m.order.minVar(v, pv)
	}
	return v
}

// essentialCofactor returns p's (low, high) cofactors with respect to v if
// v is p's top variable, or (p, p) unchanged otherwise — "essential
// conditioning": only arguments whose top variable is exactly v are
// cofactored, per spec.md §4.3's Shannon-expansion step.
func (m *Manager) essentialCofactor(p BddPtr, v VarLabel) (lo, hi BddPtr) {
	pv, ok := m.topVar(p)
	if !ok || pv != v {
		return p, p
	}
	return m.low(p), m.high(p)
}
