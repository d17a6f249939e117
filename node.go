// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// bddNode is an interned, immutable internal node: (Var, Low, High). The
// invariant order.Lt(Var, child.Var) holds for every non-terminal child,
// enforced by the caller of getOrInsert (ite.go always cofactors on the
// first essential variable before interning).
//
// scratch is a type-erased slot used by DAG walks (conditioning memo,
// semiring-fold memo, sampling/top-k accumulators). It is valid only while
// scratchGen matches the manager's current generation counter; this gives
// O(1) amortized "clear all scratch" between public API calls without
// having to walk the arena, mirroring the teacher's own preference for
// cheap, non-walked cache resets (cache.go's fixed-size arrays are simply
// overwritten, never swept).
type bddNode struct {
	Var  VarLabel
	Low  BddPtr
	High BddPtr

	scratch    interface{}
	scratchGen uint64
}

// scratchGet returns the node's scratch value if it was set during the
// current generation, else (nil, false).
func (m *Manager) scratchGet(idx nodeIdx) (interface{}, bool) {
	n := &m.arena[idx]
	if n.scratchGen != m.scratchGen {
		return nil, false
	}
	return n.scratch, true
}

// scratchSet stores v in the node's scratch slot, stamped with the current
// generation.
func (m *Manager) scratchSet(idx nodeIdx, v interface{}) {
	n := &m.arena[idx]
	n.scratch = v
	n.scratchGen = m.scratchGen
}

// clearScratch invalidates every node's scratch slot in O(1) by bumping the
// generation counter. Called at the top-level boundary of any operation
// that uses scratch (condition, exists, compose, smooth, Wmc, sampling,
// top-k), per spec.md's "scratch is conceptually null between public API
// calls" invariant.
func (m *Manager) clearScratch() {
	m.scratchGen++
}
