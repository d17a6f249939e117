// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/rand"

// WeightedSample draws one satisfying assignment of ptr at random, with
// probability proportional to its weight under params (the real
// semiring), and returns a one-sided-conjunction path BDD for that
// assignment together with its forward probability. Two-pass algorithm
// grounded on original_source/robdd.rs's weighted_sample
// (bottomup_pass_h + sample_path): first a bottom-up weight fold, cached
// per-node per-parity via scratch (the teacher's own math/rand import in
// operations_test.go is the pack's precedent for this dependency); then a
// top-down descent that samples a branch at each node in proportion to its
// subtree weight. Scratch is cleared on exit, per spec.md §4.6.
func (m *Manager) WeightedSample(ptr BddPtr, params *WmcParams[float64], rng *rand.Rand) (BddPtr, float64) {
	if ptr.IsFalse() {
		precondition("sample-from-false", "bdd: cannot sample from the unsatisfiable BDD")
	}
	m.clearScratch()
	m.bottomupWeights(ptr, params)
	path, prob := m.samplePath(ptr, params, rng)
	m.clearScratch()
	return path, prob
}

// bottomupWeights returns the cached bottom-up weight for p, computing and
// caching it (and its subtree) first if necessary.
func (m *Manager) bottomupWeights(p BddPtr, params *WmcParams[float64]) float64 {
	if p.IsTrue() {
		return params.One
	}
	if p.IsFalse() {
		return params.Zero
	}
	if cached, ok := m.scratchGet(p.idx); ok {
		slot := cached.(*wmcSlot[float64])
		if p.compl && slot.hasCompl {
			return slot.compl
		}
		if !p.compl && slot.hasReg {
			return slot.reg
		}
	}
	n := &m.arena[p.idx]
	lowChild, highChild := n.Low, n.High
	if p.compl {
		lowChild, highChild = lowChild.Neg(), highChild.Neg()
	}
	lowW := m.bottomupWeights(lowChild, params)
	highW := m.bottomupWeights(highChild, params)
	loWeight, hiWeight := params.GetVarWeight(n.Var)
	result := loWeight*lowW + hiWeight*highW

	var slot *wmcSlot[float64]
	if cached, ok := m.scratchGet(p.idx); ok {
		slot = cached.(*wmcSlot[float64])
	} else {
		slot = &wmcSlot[float64]{}
	}
	if p.compl {
		slot.hasCompl, slot.compl = true, result
	} else {
		slot.hasReg, slot.reg = true, result
	}
	m.scratchSet(p.idx, slot)
	return result
}

// samplePath descends from p, drawing a uniform r in [0, weight(p)) at each
// node to decide whether to follow low or high, rebuilding a path BDD (a
// one-sided conjunction over the decisions taken) and accumulating the
// forward probability as the product of branch probabilities.
func (m *Manager) samplePath(p BddPtr, params *WmcParams[float64], rng *rand.Rand) (BddPtr, float64) {
	if p.IsTrue() {
		return BddTrue, 1
	}
	if p.IsFalse() {
		precondition("sample-from-false", "bdd: sampling reached an unsatisfiable subtree")
	}
	n := &m.arena[p.idx]
	lowChild, highChild := n.Low, n.High
	if p.compl {
		lowChild, highChild = lowChild.Neg(), highChild.Neg()
	}
	loWeight, hiWeight := params.GetVarWeight(n.Var)
	lowW := m.bottomupWeights(lowChild, params)
	highW := m.bottomupWeights(highChild, params)
	total := loWeight*lowW + hiWeight*highW
	lowMass := loWeight * lowW

	r := rng.Float64() * total
	if r < lowMass {
		sub, prob := m.samplePath(lowChild, params, rng)
		lit := m.Var(n.Var, false)
		return m.And(lit, sub), (lowMass / total) * prob
	}
	sub, prob := m.samplePath(highChild, params, rng)
	lit := m.Var(n.Var, true)
	highMass := hiWeight * highW
	return m.And(lit, sub), (highMass / total) * prob
}
