// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// AndAll returns the conjunction of a sequence of BddPtrs, grounded on the
// teacher's Set.And variadic convenience method.
func (m *Manager) AndAll(n ...BddPtr) BddPtr {
	acc := BddTrue
	for _, p := range n {
		acc = m.And(acc, p)
	}
	return acc
}

// OrAll returns the disjunction of a sequence of BddPtrs, grounded on the
// teacher's Set.Or variadic convenience method.
func (m *Manager) OrAll(n ...BddPtr) BddPtr {
	acc := BddFalse
	for _, p := range n {
		acc = m.Or(acc, p)
	}
	return acc
}

// ExistsAll existentially quantifies every variable in vars in turn,
// grounded on the teacher's Set.Exist (a Set built via Makeset is just a
// conjunction-of-variables BDD used as a quantification target; this module
// takes the variable slice directly instead of round-tripping through a
// BDD-encoded set).
func (m *Manager) ExistsAll(ptr BddPtr, vars []VarLabel) BddPtr {
	r := ptr
	for _, v := range vars {
		r = m.Exists(r, v)
	}
	return r
}

// AndExist computes ∃varset. (n1 ∧ n2) by building the conjunction and then
// existentially quantifying each variable in varset in turn, grounded on
// the teacher's Set.AndExist (itself backed by a combined apply+quantify
// cache the teacher calls AppEx; this module's Exists already memoizes via
// the ordinary apply cache, so the two-step form is equivalent).
func (m *Manager) AndExist(varset []VarLabel, n1, n2 BddPtr) BddPtr {
	r := m.And(n1, n2)
	for _, v := range varset {
		r = m.Exists(r, v)
	}
	return r
}

// NodeCount returns the total number of interned nodes currently held by the
// manager's arena, grounded on the teacher's Allnodes called with no root
// (which walks the whole unique table rather than one BDD's reachable set).
func (m *Manager) NodeCount() int {
	return len(m.arena) - 2
}

// ReachableNodeCount returns the number of distinct nodes reachable from
// ptr, grounded on the teacher's Allnodes called with a root argument.
func (m *Manager) ReachableNodeCount(ptr BddPtr) int {
	visited := make(map[nodeIdx]bool)
	var walk func(p BddPtr)
	walk = func(p BddPtr) {
		if p.IsConst() || visited[p.idx] {
			return
		}
		visited[p.idx] = true
		n := &m.arena[p.idx]
		walk(n.Low)
		walk(n.High)
	}
	walk(ptr)
	return len(visited)
}
