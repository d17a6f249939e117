// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "sort"

// Path is one weighted satisfying assignment (or partial assignment, below
// the point where every remaining variable is a don't-care) returned by
// TopKPaths, grounded on original_source/robdd.rs's Path{weight,
// decisions}.
type Path struct {
	Weight    float64
	Decisions []Decision
}

// pathSlot is the scratch value TopKPaths stores per visited node.
type pathSlot struct {
	hasReg, hasCompl bool
	reg, compl       []Path
}

// TopKPaths returns the k highest-weighted satisfying assignments of ptr
// under params, together with a BddPtr accepting exactly their union
// (spec.md §8 law 10). Bottom-up, each node merges its children's top-k
// path lists (prepending the node's own decision and multiplying by the
// corresponding branch weight), sorts descending, and truncates to k,
// grounded on original_source/robdd.rs's Path/TopKCache/bottom_up_top_k.
// The union BDD is rebuilt by conjoining each path's decisions and
// disjoining the results — a direct consequence of ite's own interning and
// cache reuse rather than the source's separate partition-based
// reconstruction, which this module does not reproduce bit-for-bit.
func (m *Manager) TopKPaths(ptr BddPtr, k int, params *WmcParams[float64]) (BddPtr, []Path) {
	if k <= 0 {
		precondition("invalid-k", "bdd: TopKPaths requires k > 0, got %d", k)
	}
	m.clearScratch()
	paths := m.topKFold(ptr, k, params)
	m.clearScratch()

	union := BddFalse
	for _, p := range paths {
		conj := BddTrue
		for _, d := range p.Decisions {
			conj = m.And(conj, m.Var(d.Var, d.Polarity))
		}
		union = m.Or(union, conj)
	}
	return union, paths
}

func (m *Manager) topKFold(p BddPtr, k int, params *WmcParams[float64]) []Path {
	if p.IsTrue() {
		return []Path{{Weight: params.One}}
	}
	if p.IsFalse() {
		return nil
	}
	if cached, ok := m.scratchGet(p.idx); ok {
		slot := cached.(*pathSlot)
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
	lowPaths := m.topKFold(lowChild, k, params)
	highPaths := m.topKFold(highChild, k, params)
	loW, hiW := params.GetVarWeight(n.Var)

	merged := make([]Path, 0, len(lowPaths)+len(highPaths))
	for _, pth := range lowPaths {
		merged = append(merged, Path{
			Weight:    loW * pth.Weight,
			Decisions: prependDecision(Decision{n.Var, false}, pth.Decisions),
		})
	}
	for _, pth := range highPaths {
		merged = append(merged, Path{
			Weight:    hiW * pth.Weight,
			Decisions: prependDecision(Decision{n.Var, true}, pth.Decisions),
		})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Weight > merged[j].Weight })
	if len(merged) > k {
		merged = merged[:k]
	}

	var slot *pathSlot
	if cached, ok := m.scratchGet(p.idx); ok {
		slot = cached.(*pathSlot)
	} else {
		slot = &pathSlot{}
	}
	if p.compl {
		slot.hasCompl, slot.compl = true, merged
	} else {
		slot.hasReg, slot.reg = true, merged
	}
	m.scratchSet(p.idx, slot)
	return merged
}

func prependDecision(d Decision, rest []Decision) []Decision {
	out := make([]Decision, 0, len(rest)+1)
	out = append(out, d)
	out = append(out, rest...)
	return out
}
